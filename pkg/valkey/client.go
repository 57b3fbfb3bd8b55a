package valkey

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/redis/go-redis/v9"
)

// NewClient はクライアントを生成し、DialTimeout 以内にPINGが通ることを確認する。
// 疎通できない場合はクライアントを閉じてエラーを返す。
func NewClient(opts *Options) (*redis.Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	client := redis.NewClient(opts.redisOptions())

	ctx, cancel := context.WithTimeout(context.Background(), opts.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// IsConnectionError はエラーが接続断・タイムアウト・キャンセル由来かを判定する。
// それ以外はコマンドエラーとして扱う。
func IsConnectionError(err error) bool {
	var netErr net.Error
	switch {
	case err == nil:
		return false
	case errors.As(err, &netErr):
		// *net.OpError もここで拾う
		return true
	case errors.Is(err, io.EOF), errors.Is(err, redis.ErrClosed):
		return true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return true
	}
	return false
}

// IsKeyNotFound はキーが存在しない(redis.Nil)場合にtrueを返す。
func IsKeyNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
