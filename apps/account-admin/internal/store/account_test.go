package store

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestAccountStore(t *testing.T) (*AccountStore, func(name string, sessionID int64)) {
	t.Helper()
	mr, client := newTestRedis(t)
	login := func(name string, sessionID int64) {
		seedSession(t, mr, name, sessionID)
	}
	return NewAccountStore(client, bcrypt.MinCost), login
}

func TestAccountStore_Create(t *testing.T) {
	s, _ := newTestAccountStore(t)
	ctx := context.Background()

	if err := s.Create(ctx, "alice", "secret", 12.5); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := s.Create(ctx, "alice", "other", 0); !errors.Is(err, ErrAccountExists) {
		t.Errorf("Create() duplicate error = %v, want ErrAccountExists", err)
	}

	hash, err := s.client.HGet(ctx, AccountKey("alice"), FieldPasswordHash).Result()
	if err != nil {
		t.Fatalf("HGet() error = %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Balance != 12.5 {
		t.Errorf("Balance = %v, want 12.5", got.Balance)
	}
	if got.LoggedIn() {
		t.Error("LoggedIn() = true, want false")
	}
}

func TestAccountStore_Get(t *testing.T) {
	s, login := newTestAccountStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "nobody"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Get() error = %v, want ErrAccountNotFound", err)
	}

	if err := s.Create(ctx, "bob", "secret", 0); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	login("bob", 7)

	got, err := s.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.SessionID != 7 {
		t.Errorf("SessionID = %d, want 7", got.SessionID)
	}
	if !got.LoggedIn() {
		t.Error("LoggedIn() = false, want true")
	}
}

func TestAccountStore_ListAndCount(t *testing.T) {
	s, login := newTestAccountStore(t)
	ctx := context.Background()

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() on empty store = %d items, want 0", len(list))
	}

	for _, name := range []string{"carol", "alice", "bob"} {
		if err := s.Create(ctx, name, "secret", 1); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}
	login("bob", 3)

	list, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List() = %d items, want 3", len(list))
	}
	wantOrder := []string{"alice", "bob", "carol"}
	for i, acc := range list {
		if acc.Name != wantOrder[i] {
			t.Errorf("List()[%d].Name = %s, want %s", i, acc.Name, wantOrder[i])
		}
	}
	if list[1].SessionID != 3 {
		t.Errorf("bob SessionID = %d, want 3", list[1].SessionID)
	}
	if list[0].SessionID != 0 {
		t.Errorf("alice SessionID = %d, want 0", list[0].SessionID)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestAccountStore_SetBalance(t *testing.T) {
	s, _ := newTestAccountStore(t)
	ctx := context.Background()

	if _, err := s.SetBalance(ctx, "nobody", 1); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("SetBalance() error = %v, want ErrAccountNotFound", err)
	}

	if err := s.Create(ctx, "alice", "secret", 10); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	previous, err := s.SetBalance(ctx, "alice", 25.75)
	if err != nil {
		t.Fatalf("SetBalance() error = %v", err)
	}
	if previous != 10 {
		t.Errorf("previous = %v, want 10", previous)
	}

	got, _ := s.Get(ctx, "alice")
	if got.Balance != 25.75 {
		t.Errorf("Balance = %v, want 25.75", got.Balance)
	}
}

func TestAccountStore_Delete(t *testing.T) {
	s, login := newTestAccountStore(t)
	ctx := context.Background()

	if err := s.Delete(ctx, "nobody"); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Delete() error = %v, want ErrAccountNotFound", err)
	}

	if err := s.Create(ctx, "alice", "secret", 0); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	login("alice", 5)

	if err := s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for _, key := range []string{AccountKey("alice"), UserIndexKey("alice"), SessionKey(5)} {
		n, err := s.client.Exists(ctx, key).Result()
		if err != nil {
			t.Fatalf("Exists(%s) error = %v", key, err)
		}
		if n != 0 {
			t.Errorf("key %s still exists after Delete()", key)
		}
	}
}

func TestAccountStore_InvalidBalance(t *testing.T) {
	s, _ := newTestAccountStore(t)
	ctx := context.Background()

	if err := s.client.HSet(ctx, AccountKey("broken"), FieldBalance, "abc").Err(); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}

	if _, err := s.Get(ctx, "broken"); err == nil {
		t.Error("Get() expected error for invalid balance")
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %d items, want invalid entry skipped", len(list))
	}
}
