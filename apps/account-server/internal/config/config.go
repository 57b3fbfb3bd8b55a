// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/oyaguma3/account-session-gateway/pkg/valkey"
)

// Config はAccount Serverの設定を保持する。
type Config struct {
	// Valkey設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8090"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskUser bool   `envconfig:"LOG_MASK_USER" default:"true"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`
}

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

// ValkeyOptions はValkeyクライアントのオプションを返す。
func (c *Config) ValkeyOptions() *valkey.Options {
	return valkey.DefaultOptions().
		WithAddr(c.ValkeyAddr()).
		WithPassword(c.RedisPass).
		WithTimeouts(ValkeyConnectTimeout, ValkeyCommandTimeout).
		WithRetries(ValkeyMaxRetries, ValkeyMinRetryDelay, ValkeyMaxRetryDelay)
}
