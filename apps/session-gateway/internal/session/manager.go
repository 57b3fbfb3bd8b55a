package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/oyaguma3/account-session-gateway/pkg/logging"
	"github.com/oyaguma3/account-session-gateway/pkg/model"
)

// Manager はユーザー名ごとのセッションIDを保持し、
// アカウントサーバーへの操作をセッション状態と整合させる。
//
// 同一ユーザー名の操作は直列化され、異なるユーザー名の操作は
// リモート呼び出し中も互いを待たない。
type Manager struct {
	remote RemoteServer
	harden Hardener

	mu       sync.Mutex
	sessions map[string]int64

	locks *keyedMutex
}

// NewManager は新しいManagerを生成する。
func NewManager(remote RemoteServer, harden Hardener) *Manager {
	return &Manager{
		remote:   remote,
		harden:   harden,
		sessions: make(map[string]int64),
		locks:    newKeyedMutex(),
	}
}

// Login はログインする。
// ログイン済みのユーザー名はリモート呼び出しを行わずAlreadyLoggedを返す。
func (m *Manager) Login(ctx context.Context, name, password string) Result {
	hardened := m.harden(password)

	unlock := m.locks.Lock(name)
	defer unlock()

	if _, ok := m.lookup(name); ok {
		return Result{Code: AlreadyLogged}
	}

	resp, err := m.remote.Login(context.WithoutCancel(ctx), name, hardened)
	if err != nil || resp == nil {
		return Result{Code: UndefinedError}
	}

	var payload any
	if resp.SessionID != nil {
		payload = *resp.SessionID
	}

	switch resp.Status {
	case model.StatusSuccess:
		if resp.SessionID == nil {
			return Result{Code: UndefinedError}
		}
		m.put(name, *resp.SessionID)
		slog.Debug("session registered", logging.WithSessionID(*resp.SessionID))
		return Result{Code: Succeeded, Payload: payload}
	case model.StatusAlreadyLogged:
		return Result{Code: AlreadyLogged, Payload: payload}
	case model.StatusNoUserIncorrectPassword:
		return Result{Code: NoUserIncorrectPassword, Payload: payload}
	default:
		return Result{Code: UndefinedError, Payload: payload}
	}
}

// Logout はセッションを終了する。
// sessionIDは保持中のセッションIDと照合せずにそのままリモートへ渡す。
func (m *Manager) Logout(ctx context.Context, name string, sessionID int64) Result {
	unlock := m.locks.Lock(name)
	defer unlock()

	if _, ok := m.lookup(name); !ok {
		return Result{Code: NotLogged}
	}

	resp, err := m.remote.Logout(context.WithoutCancel(ctx), sessionID)
	if err != nil || resp == nil {
		return Result{Code: UndefinedError}
	}

	switch resp.Status {
	case model.StatusSuccess:
		m.remove(name)
		slog.Debug("session removed", logging.WithSessionID(sessionID))
		return Result{Code: Succeeded}
	case model.StatusNotLogged:
		return Result{Code: NotLogged}
	default:
		return Result{Code: UndefinedError}
	}
}

// Deposit は入金する。
func (m *Manager) Deposit(ctx context.Context, name string, sessionID int64, amount float64) Result {
	return m.gated(ctx, name, sessionID, false, func(ctx context.Context) (*model.Response, error) {
		return m.remote.Deposit(ctx, sessionID, amount)
	})
}

// Withdraw は出金する。
// 残高不足はInsufficientFundsとして返す。
func (m *Manager) Withdraw(ctx context.Context, name string, sessionID int64, amount float64) Result {
	return m.gated(ctx, name, sessionID, true, func(ctx context.Context) (*model.Response, error) {
		return m.remote.Withdraw(ctx, sessionID, amount)
	})
}

// GetBalance は残高を照会する。
func (m *Manager) GetBalance(ctx context.Context, name string, sessionID int64) Result {
	return m.gated(ctx, name, sessionID, false, func(ctx context.Context) (*model.Response, error) {
		return m.remote.GetBalance(ctx, sessionID)
	})
}

// gated はセッション照合後にリモート呼び出しを行い、結果を変換する。
// allowNoMoney=falseの場合、残高不足応答はUndefinedErrorとなる。
func (m *Manager) gated(ctx context.Context, name string, sessionID int64, allowNoMoney bool,
	call func(context.Context) (*model.Response, error)) Result {
	unlock := m.locks.Lock(name)
	defer unlock()

	stored, ok := m.lookup(name)
	if !ok {
		return Result{Code: NotLogged}
	}
	if stored != sessionID {
		return Result{Code: IncorrectSession}
	}

	resp, err := call(context.WithoutCancel(ctx))
	if err != nil || resp == nil {
		return Result{Code: UndefinedError}
	}

	switch resp.Status {
	case model.StatusSuccess:
		if resp.Balance == nil {
			return Result{Code: Succeeded}
		}
		return Result{Code: Succeeded, Payload: *resp.Balance}
	case model.StatusNotLogged:
		return Result{Code: NotLogged}
	case model.StatusNoMoney:
		if allowNoMoney {
			return Result{Code: InsufficientFunds}
		}
		return Result{Code: UndefinedError}
	default:
		return Result{Code: UndefinedError}
	}
}

func (m *Manager) lookup(name string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.sessions[name]
	return id, ok
}

func (m *Manager) put(name string, sessionID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[name] = sessionID
}

func (m *Manager) remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, name)
}
