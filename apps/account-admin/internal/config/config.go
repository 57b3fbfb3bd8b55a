// Package config はAccount Adminの設定管理を提供する。
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"

	"github.com/oyaguma3/account-session-gateway/pkg/valkey"
)

// Config はAccount Adminの設定を表す。
type Config struct {
	RedisHost string `envconfig:"REDIS_HOST" default:"127.0.0.1"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPass string `envconfig:"REDIS_PASS"`

	AdminUser    string `envconfig:"ADMIN_USER" default:"admin"`
	AuditLogFile string `envconfig:"AUDIT_LOG_FILE" default:"account-admin-audit.log"`
}

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 3 * time.Second
	ValkeyMaxRetries     = 1
	ValkeyMinRetryDelay  = 100 * time.Millisecond
	ValkeyMaxRetryDelay  = 500 * time.Millisecond
	ValkeyPoolSize       = 2
)

// アカウント登録時のパスワードハッシュコスト
const BcryptCost = bcrypt.DefaultCost

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す。
func (c *Config) ValkeyAddr() string {
	return valkey.BuildAddr(c.RedisHost, c.RedisPort)
}

// ValkeyOptions は対話用途向けのValkeyクライアントオプションを返す。
// 管理画面は単一ユーザーのためプールは小さく、リトライも最小限にする。
func (c *Config) ValkeyOptions() *valkey.Options {
	return valkey.DefaultOptions().
		WithAddr(c.ValkeyAddr()).
		WithPassword(c.RedisPass).
		WithTimeouts(ValkeyConnectTimeout, ValkeyCommandTimeout).
		WithRetries(ValkeyMaxRetries, ValkeyMinRetryDelay, ValkeyMaxRetryDelay).
		WithPool(ValkeyPoolSize, 1)
}
