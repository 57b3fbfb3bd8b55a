package config

import "time"

// Account API接続設定
const (
	AccountRequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "account-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// パスワードハードニング設定
const (
	MinPepperLength = 8
)

// サーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)
