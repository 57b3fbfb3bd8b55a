package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session はAccount Serverが発行したセッションを表す。
type Session struct {
	ID   int64
	Name string
	TTL  time.Duration // 有効期限なしの場合は負値
}

// SessionStore はセッションデータへのアクセスを提供する。
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore は新しいSessionStoreを生成する。
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Get は指定されたIDのセッションを取得する。
func (s *SessionStore) Get(ctx context.Context, sessionID int64) (*Session, error) {
	key := SessionKey(sessionID)

	pipe := s.client.Pipeline()
	nameCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	name, err := nameCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Session{ID: sessionID, Name: name, TTL: ttlCmd.Val()}, nil
}

// List は全セッションをID順で取得する（SCAN使用）。
func (s *SessionStore) List(ctx context.Context) ([]*Session, error) {
	keys, err := scanKeys(ctx, s.client, PrefixSession+"*")
	if err != nil {
		return nil, err
	}
	sessions := []*Session{}
	if len(keys) == 0 {
		return sessions, nil
	}

	pipe := s.client.Pipeline()
	nameCmds := make([]*redis.StringCmd, len(keys))
	ttlCmds := make([]*redis.DurationCmd, len(keys))
	for i, key := range keys {
		nameCmds[i] = pipe.Get(ctx, key)
		ttlCmds[i] = pipe.TTL(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	for i, key := range keys {
		id, err := strconv.ParseInt(strings.TrimPrefix(key, PrefixSession), 10, 64)
		if err != nil {
			continue
		}
		name, err := nameCmds[i].Result()
		if err != nil {
			// SCAN後に失効した
			continue
		}
		sessions = append(sessions, &Session{ID: id, Name: name, TTL: ttlCmds[i].Val()})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

// Count はセッションの総数を返す。
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	keys, err := scanKeys(ctx, s.client, PrefixSession+"*")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Terminate はセッションを強制終了し、セッションのユーザー名を返す。
// ユーザーインデックスは同じセッションを指している場合のみ削除する。
func (s *SessionStore) Terminate(ctx context.Context, sessionID int64) (string, error) {
	key := SessionKey(sessionID)

	name, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	idxKey := UserIndexKey(name)

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		if current != name {
			return ErrConflict
		}
		indexed, err := tx.Get(ctx, idxKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			if indexed == strconv.FormatInt(sessionID, 10) {
				pipe.Del(ctx, idxKey)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key, idxKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return "", err
		}
		return name, nil
	}
	return "", ErrConflict
}
