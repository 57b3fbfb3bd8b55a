package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyMaxRetries     = 3
	ValkeyMinRetryDelay  = 100 * time.Millisecond
	ValkeyMaxRetryDelay  = 1 * time.Second
)

// セッション管理
const (
	SessionTTL = 30 * time.Minute
)

// 残高更新時の楽観ロック再試行回数
const (
	MaxTxRetries = 10
)

// サーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// パスワードハッシュ設定
const (
	BcryptCost = bcrypt.DefaultCost
)
