package store

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/pkg/apperr"
)

func newTestStore(t *testing.T) (AccountStore, *ValkeyClient) {
	t.Helper()
	_, vc := newTestClient(t)
	return NewAccountStore(vc), vc
}

// registerAndLogin はアカウントを登録してログインし、セッションIDを返す。
func registerAndLogin(t *testing.T, s AccountStore, name string) int64 {
	t.Helper()
	ctx := context.Background()
	if err := s.Register(ctx, name, "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	id, err := s.Login(ctx, name, "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return id
}

func TestRegister(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()

	if err := s.Register(ctx, "alice", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	hash := h.mr.HGet("acct:alice", FieldPasswordHash)
	if hash == "" || hash == "pass" {
		t.Errorf("password_hash = %q, want bcrypt hash", hash)
	}
	if got := h.mr.HGet("acct:alice", FieldBalance); got != "0" {
		t.Errorf("balance = %q, want %q", got, "0")
	}

	if err := s.Register(ctx, "alice", "other"); !errors.Is(err, apperr.ErrAccountExists) {
		t.Errorf("duplicate Register error = %v, want ErrAccountExists", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		user     string
		password string
		field    string
	}{
		{"empty name", "", "pass", "name"},
		{"empty password", "alice", "", "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Register(ctx, tt.user, tt.password)
			var vErr *apperr.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()

	if err := s.Register(ctx, "alice", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	id, err := s.Login(ctx, "alice", "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if id != 1 {
		t.Errorf("session id = %d, want 1", id)
	}

	got, err := h.mr.Get("sess:1")
	if err != nil || got != "alice" {
		t.Errorf("sess:1 = (%q, %v), want alice", got, err)
	}
	if ttl := h.mr.TTL("sess:1"); ttl != config.SessionTTL {
		t.Errorf("TTL(sess:1) = %v, want %v", ttl, config.SessionTTL)
	}
	if got, _ := h.mr.Get("idx:user:alice"); got != "1" {
		t.Errorf("idx:user:alice = %q, want %q", got, "1")
	}
}

func TestLoginFailures(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	registerAndLogin(t, s, "alice")
	if err := s.Register(ctx, "bob", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		user     string
		password string
		wantErr  error
	}{
		{"unknown user", "carol", "pass", apperr.ErrAccountNotFound},
		{"wrong password", "bob", "wrong", apperr.ErrIncorrectPassword},
		{"already logged", "alice", "pass", apperr.ErrAlreadyLogged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(ctx, tt.user, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoginAlreadyLoggedKeepsSequence(t *testing.T) {
	mr, vc := newTestClient(t)
	s := NewAccountStore(vc)
	ctx := context.Background()

	first := registerAndLogin(t, s, "alice")
	for i := 0; i < 3; i++ {
		if _, err := s.Login(ctx, "alice", "pass"); !errors.Is(err, apperr.ErrAlreadyLogged) {
			t.Fatalf("Login error = %v, want %v", err, apperr.ErrAlreadyLogged)
		}
	}

	seq, err := mr.Get(KeySessionSeq)
	if err != nil {
		t.Fatalf("miniredis Get() error = %v", err)
	}
	if seq != "1" {
		t.Errorf("seq:session = %q, want %q", seq, "1")
	}
	if got, _ := mr.Get(userIndexKey("alice")); got != "1" {
		t.Errorf("user index = %q, want %q", got, "1")
	}

	if err := s.Logout(ctx, first); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	second, err := s.Login(ctx, "alice", "pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if second != first+1 {
		t.Errorf("next session id = %d, want %d", second, first+1)
	}
	if ttl := mr.TTL(userIndexKey("alice")); ttl != config.SessionTTL {
		t.Errorf("user index TTL = %v, want %v", ttl, config.SessionTTL)
	}
}

func TestConcurrentLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	if err := s.Register(ctx, "alice", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	const workers = 5
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Login(ctx, "alice", "pass")
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			} else if !errors.Is(err, apperr.ErrAlreadyLogged) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if success != 1 {
		t.Errorf("successful logins = %d, want 1", success)
	}
}

func TestLogout(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()

	id := registerAndLogin(t, s, "alice")
	if err := s.Logout(ctx, id); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if h.mr.Exists("sess:1") || h.mr.Exists("idx:user:alice") {
		t.Error("session keys should be deleted")
	}

	if err := s.Logout(ctx, id); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("second Logout error = %v, want ErrSessionNotFound", err)
	}

	// 再ログインできる
	if _, err := s.Login(ctx, "alice", "pass"); err != nil {
		t.Errorf("Login after logout failed: %v", err)
	}
}

func TestLogoutKeepsNewerIndex(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()

	id := registerAndLogin(t, s, "alice")
	// インデックスが別セッションに置き換わった状態
	h.mr.Set("idx:user:alice", "99")

	if err := s.Logout(ctx, id); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if got, _ := h.mr.Get("idx:user:alice"); got != "99" {
		t.Errorf("idx:user:alice = %q, want %q", got, "99")
	}
}

func TestDepositWithdrawBalance(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	id := registerAndLogin(t, s, "alice")

	balance, err := s.Balance(ctx, id)
	if err != nil || balance != 0 {
		t.Fatalf("Balance = (%v, %v), want (0, nil)", balance, err)
	}

	if _, err := s.Withdraw(ctx, id, 50); !errors.Is(err, apperr.ErrInsufficientFunds) {
		t.Fatalf("Withdraw error = %v, want ErrInsufficientFunds", err)
	}

	balance, err = s.Deposit(ctx, id, 100)
	if err != nil || balance != 100 {
		t.Fatalf("Deposit = (%v, %v), want (100, nil)", balance, err)
	}

	balance, err = s.Withdraw(ctx, id, 50)
	if err != nil || balance != 50 {
		t.Fatalf("Withdraw = (%v, %v), want (50, nil)", balance, err)
	}

	balance, err = s.Deposit(ctx, id, 0.25)
	if err != nil || balance != 50.25 {
		t.Fatalf("Deposit = (%v, %v), want (50.25, nil)", balance, err)
	}

	balance, err = s.Balance(ctx, id)
	if err != nil || balance != 50.25 {
		t.Fatalf("Balance = (%v, %v), want (50.25, nil)", balance, err)
	}
}

func TestInvalidAmount(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	id := registerAndLogin(t, s, "alice")

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := s.Deposit(ctx, id, amount); !errors.Is(err, apperr.ErrInvalidAmount) {
			t.Errorf("Deposit(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
		if _, err := s.Withdraw(ctx, id, amount); !errors.Is(err, apperr.ErrInvalidAmount) {
			t.Errorf("Withdraw(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestUnknownSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Deposit(ctx, 42, 1); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Deposit error = %v, want ErrSessionNotFound", err)
	}
	if _, err := s.Withdraw(ctx, 42, 1); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Withdraw error = %v, want ErrSessionNotFound", err)
	}
	if _, err := s.Balance(ctx, 42); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Balance error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionExpires(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()
	id := registerAndLogin(t, s, "alice")

	h.mr.FastForward(config.SessionTTL)

	if _, err := s.Balance(ctx, id); !errors.Is(err, apperr.ErrSessionNotFound) {
		t.Errorf("Balance error = %v, want ErrSessionNotFound", err)
	}
	if _, err := s.Login(ctx, "alice", "pass"); err != nil {
		t.Errorf("Login after expiry failed: %v", err)
	}
}

func TestConcurrentDeposits(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	id := registerAndLogin(t, s, "alice")

	const workers = 5
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Deposit(ctx, id, 10); err != nil {
				t.Errorf("Deposit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	balance, err := s.Balance(ctx, id)
	if err != nil || balance != workers*10 {
		t.Errorf("Balance = (%v, %v), want (%d, nil)", balance, err, workers*10)
	}
}

func TestValkeyDown(t *testing.T) {
	h := newTestEnv(t)
	s := h.store
	ctx := context.Background()
	id := registerAndLogin(t, s, "alice")

	h.mr.Close()

	if _, err := s.Balance(ctx, id); !errors.Is(err, apperr.ErrValkeyConnection) {
		t.Errorf("Balance error = %v, want ErrValkeyConnection", err)
	}
}
