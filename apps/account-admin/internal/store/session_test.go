package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSessionStore_GetAndList(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewSessionStore(client)
	ctx := context.Background()

	if _, err := s.Get(ctx, 1); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get() error = %v, want ErrSessionNotFound", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() on empty store = %d items, want 0", len(list))
	}

	seedSession(t, mr, "bob", 12)
	seedSession(t, mr, "alice", 3)
	mr.SetTTL(SessionKey(3), 30*time.Minute)

	got, err := s.Get(ctx, 3)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "alice" {
		t.Errorf("Name = %s, want alice", got.Name)
	}
	if got.TTL != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", got.TTL)
	}

	list, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List() = %d items, want 2", len(list))
	}
	if list[0].ID != 3 || list[1].ID != 12 {
		t.Errorf("List() order = [%d, %d], want [3, 12]", list[0].ID, list[1].ID)
	}
	if list[1].TTL >= 0 {
		t.Errorf("TTL without expiry = %v, want negative", list[1].TTL)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count() = %d, want 2", count)
	}
}

func TestSessionStore_ListSkipsMalformedKeys(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewSessionStore(client)

	seedSession(t, mr, "alice", 1)
	if err := mr.Set("sess:not-a-number", "x"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() = %d items, want 1", len(list))
	}
}

func TestSessionStore_Terminate(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewSessionStore(client)
	ctx := context.Background()

	if _, err := s.Terminate(ctx, 99); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Terminate() error = %v, want ErrSessionNotFound", err)
	}

	seedSession(t, mr, "alice", 4)

	name, err := s.Terminate(ctx, 4)
	if err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	if name != "alice" {
		t.Errorf("Terminate() name = %s, want alice", name)
	}
	if mr.Exists(SessionKey(4)) {
		t.Error("session key still exists")
	}
	if mr.Exists(UserIndexKey("alice")) {
		t.Error("user index still exists")
	}
}

func TestSessionStore_TerminateKeepsNewerIndex(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewSessionStore(client)

	// 古いセッションが残ったまま、インデックスは新しいセッションを指している
	seedSession(t, mr, "alice", 4)
	seedSession(t, mr, "alice", 9)

	if _, err := s.Terminate(context.Background(), 4); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}

	if mr.Exists(SessionKey(4)) {
		t.Error("terminated session key still exists")
	}
	got, err := mr.Get(UserIndexKey("alice"))
	if err != nil {
		t.Fatalf("user index missing: %v", err)
	}
	if got != "9" {
		t.Errorf("user index = %s, want 9", got)
	}
}
