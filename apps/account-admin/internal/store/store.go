package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrSessionNotFound = errors.New("session not found")
	// ErrConflict はWATCHの再試行を使い切った場合に返す。
	ErrConflict = errors.New("concurrent modification, retry later")
)

// Store は1本のValkey接続を共有するアカウント・セッション用ストアの束。
type Store struct {
	client   *redis.Client
	Accounts *AccountStore
	Sessions *SessionStore
}

// New はclientを共有するStoreを生成する。bcryptCostは新規アカウントのハッシュに使う。
func New(client *redis.Client, bcryptCost int) *Store {
	return &Store{
		client:   client,
		Accounts: NewAccountStore(client, bcryptCost),
		Sessions: NewSessionStore(client),
	}
}

// Ping は画面の読み込み前に疎通を確認する。
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

// scanKeys はpatternに一致するキーをSCANで全件集める。KEYSはサーバーをブロックするため使わない。
func scanKeys(ctx context.Context, client redis.Cmdable, pattern string) ([]string, error) {
	var keys []string
	iter := client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
