// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// アカウント関連エラー
var (
	// ErrAccountNotFound はアカウントが見つからない場合のエラー
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists はアカウントが既に登録済みの場合のエラー
	ErrAccountExists = errors.New("account already exists")
	// ErrIncorrectPassword はパスワード不一致エラー
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrInsufficientFunds は残高不足エラー
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount は金額が不正な場合のエラー
	ErrInvalidAmount = errors.New("invalid amount")
)

// セッション関連エラー
var (
	// ErrSessionNotFound はセッションが見つからない場合のエラー
	ErrSessionNotFound = errors.New("session not found")
	// ErrAlreadyLogged はユーザーが既にログイン済みの場合のエラー
	ErrAlreadyLogged = errors.New("already logged in")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
)
