// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はSession Gatewayの設定を保持する。
type Config struct {
	// Account API設定
	AccountAPIURL string `envconfig:"ACCOUNT_API_URL" required:"true"`

	// パスワードハードニング設定
	PasswordPepper string `envconfig:"PASSWORD_PEPPER" required:"true"`

	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8081"`
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
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate は設定値のバリデーションを行う。
func (c *Config) validate() error {
	if !strings.HasPrefix(c.AccountAPIURL, "http://") && !strings.HasPrefix(c.AccountAPIURL, "https://") {
		return fmt.Errorf("ACCOUNT_API_URL must start with http:// or https://")
	}
	if len(c.PasswordPepper) < MinPepperLength {
		return fmt.Errorf("PASSWORD_PEPPER must be at least %d characters", MinPepperLength)
	}
	return nil
}
