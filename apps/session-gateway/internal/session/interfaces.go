package session

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_remote.go -package=mocks

import (
	"context"

	"github.com/oyaguma3/account-session-gateway/pkg/model"
)

// RemoteServer はアカウントサーバーとの通信インターフェース。
// errorはトランスポート層の失敗を表し、業務上の拒否はResponse.Statusで返す。
type RemoteServer interface {
	// Login はログインし、成功時にセッションIDを返す
	Login(ctx context.Context, name, password string) (*model.Response, error)
	// Logout はセッションを終了する
	Logout(ctx context.Context, sessionID int64) (*model.Response, error)
	// Deposit は入金し、入金後の残高を返す
	Deposit(ctx context.Context, sessionID int64, amount float64) (*model.Response, error)
	// Withdraw は出金し、出金後の残高を返す
	Withdraw(ctx context.Context, sessionID int64, amount float64) (*model.Response, error)
	// GetBalance は残高を返す
	GetBalance(ctx context.Context, sessionID int64) (*model.Response, error)
}
