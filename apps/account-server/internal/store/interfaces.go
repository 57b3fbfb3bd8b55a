package store

import "context"

// AccountStore はアカウントとセッションへのアクセスを定義する
type AccountStore interface {
	// Register はアカウントを登録する
	Register(ctx context.Context, name, password string) error
	// Login はパスワードを検証し、新しいセッションIDを発行する
	Login(ctx context.Context, name, password string) (int64, error)
	// Logout はセッションを削除する
	Logout(ctx context.Context, sessionID int64) error
	// Deposit は入金し、入金後の残高を返す
	Deposit(ctx context.Context, sessionID int64, amount float64) (float64, error)
	// Withdraw は出金し、出金後の残高を返す
	Withdraw(ctx context.Context, sessionID int64, amount float64) (float64, error)
	// Balance は残高を返す
	Balance(ctx context.Context, sessionID int64) (float64, error)
}
