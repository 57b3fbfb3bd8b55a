package handler

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=handler

import (
	"context"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/session"
)

// SessionManager はセッション管理操作のインターフェース。
type SessionManager interface {
	Login(ctx context.Context, name, password string) session.Result
	Logout(ctx context.Context, name string, sessionID int64) session.Result
	Deposit(ctx context.Context, name string, sessionID int64, amount float64) session.Result
	Withdraw(ctx context.Context, name string, sessionID int64, amount float64) session.Result
	GetBalance(ctx context.Context, name string, sessionID int64) session.Result
}
