package store

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// newTestRedis はテスト用のminiredisインスタンスとRedisクライアントを返す。
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// seedSession はAccount Serverのログイン状態を再現する。
func seedSession(t *testing.T, mr *miniredis.Miniredis, name string, sessionID int64) {
	t.Helper()
	if err := mr.Set(SessionKey(sessionID), name); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	if err := mr.Set(UserIndexKey(name), strconv.FormatInt(sessionID, 10)); err != nil {
		t.Fatalf("failed to seed user index: %v", err)
	}
}

func TestStore_PingAndClose(t *testing.T) {
	mr, client := newTestRedis(t)
	s := New(client, bcrypt.MinCost)

	if s.Accounts == nil || s.Sessions == nil {
		t.Fatal("New() should build account and session stores")
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	mr.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() expected error after server close")
	}
}

func TestKeys(t *testing.T) {
	if got := AccountKey("alice"); got != "acct:alice" {
		t.Errorf("AccountKey() = %q, want %q", got, "acct:alice")
	}
	if got := SessionKey(42); got != "sess:42" {
		t.Errorf("SessionKey() = %q, want %q", got, "sess:42")
	}
	if got := UserIndexKey("alice"); got != "idx:user:alice" {
		t.Errorf("UserIndexKey() = %q, want %q", got, "idx:user:alice")
	}
}
