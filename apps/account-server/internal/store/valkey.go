// Package store はValkeyへのデータアクセスを提供する。
package store

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/pkg/apperr"
	"github.com/oyaguma3/account-session-gateway/pkg/valkey"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	client, err := valkey.NewClient(cfg.ValkeyOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	return &ValkeyClient{client: client}, nil
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}

// wrapValkeyError はValkey操作のエラーを接続エラーとコマンドエラーに分類する。
func wrapValkeyError(op, key string, err error) error {
	return apperr.NewValkeyError(op, key, valkey.IsConnectionError(err), err)
}
