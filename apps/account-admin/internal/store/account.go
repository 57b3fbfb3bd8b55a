package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// maxTxRetries は楽観ロックの再試行回数
const maxTxRetries = 5

// Account は管理画面に表示するアカウント情報を表す。
type Account struct {
	Name      string
	Balance   float64
	SessionID int64 // ログイン中でなければ0
}

// LoggedIn はログイン中かどうかを返す。
func (a *Account) LoggedIn() bool {
	return a.SessionID != 0
}

// AccountStore はアカウントデータへのアクセスを提供する。
type AccountStore struct {
	client     *redis.Client
	bcryptCost int
}

// NewAccountStore は新しいAccountStoreを生成する。
func NewAccountStore(client *redis.Client, bcryptCost int) *AccountStore {
	return &AccountStore{client: client, bcryptCost: bcryptCost}
}

// Get は指定された名前のアカウントを取得する。
func (s *AccountStore) Get(ctx context.Context, name string) (*Account, error) {
	raw, err := s.client.HGet(ctx, AccountKey(name), FieldBalance).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	balance, err := parseBalance(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", raw, err)
	}

	sessionID, err := s.currentSession(ctx, s.client, name)
	if err != nil {
		return nil, err
	}
	return &Account{Name: name, Balance: balance, SessionID: sessionID}, nil
}

// List は全アカウントを名前順で取得する（SCAN使用）。
func (s *AccountStore) List(ctx context.Context) ([]*Account, error) {
	keys, err := scanKeys(ctx, s.client, PrefixAccount+"*")
	if err != nil {
		return nil, err
	}
	accounts := []*Account{}
	if len(keys) == 0 {
		return accounts, nil
	}

	// Pipelineで一括取得
	pipe := s.client.Pipeline()
	balanceCmds := make([]*redis.StringCmd, len(keys))
	indexCmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		name := strings.TrimPrefix(key, PrefixAccount)
		balanceCmds[i] = pipe.HGet(ctx, key, FieldBalance)
		indexCmds[i] = pipe.Get(ctx, UserIndexKey(name))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	for i, key := range keys {
		raw, err := balanceCmds[i].Result()
		if err != nil {
			// SCAN後に削除された
			continue
		}
		balance, err := parseBalance(raw)
		if err != nil {
			continue
		}
		acc := &Account{Name: strings.TrimPrefix(key, PrefixAccount), Balance: balance}
		if v, err := indexCmds[i].Result(); err == nil {
			acc.SessionID, _ = strconv.ParseInt(v, 10, 64)
		}
		accounts = append(accounts, acc)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts, nil
}

// Count はアカウントの総数を返す。
func (s *AccountStore) Count(ctx context.Context) (int, error) {
	keys, err := scanKeys(ctx, s.client, PrefixAccount+"*")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Create はアカウントを登録する。
// パスワードはAccount Serverと同じbcrypt形式で保存する。
func (s *AccountStore) Create(ctx context.Context, name, password string, balance float64) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	key := AccountKey(name)
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAccountExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, FieldPasswordHash, string(hash), FieldBalance, formatBalance(balance))
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrAccountExists
	}
	return err
}

// SetBalance は残高を上書きし、変更前の残高を返す。
func (s *AccountStore) SetBalance(ctx context.Context, name string, balance float64) (float64, error) {
	key := AccountKey(name)
	var previous float64

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, FieldBalance).Result()
		if errors.Is(err, redis.Nil) {
			return ErrAccountNotFound
		}
		if err != nil {
			return err
		}
		previous, err = parseBalance(raw)
		if err != nil {
			return fmt.Errorf("invalid balance %q: %w", raw, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, FieldBalance, formatBalance(balance))
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return previous, nil
	}
	return 0, ErrConflict
}

// Delete はアカウントと、ログイン中であればそのセッションを削除する。
func (s *AccountStore) Delete(ctx context.Context, name string) error {
	key := AccountKey(name)
	idxKey := UserIndexKey(name)

	txf := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrAccountNotFound
		}
		sessionID, err := s.currentSession(ctx, tx, name)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key, idxKey)
			if sessionID != 0 {
				pipe.Del(ctx, SessionKey(sessionID))
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
		return err
	}
	return ErrConflict
}

// currentSession はユーザーインデックスからログイン中のセッションIDを返す。
// ログインしていなければ0を返す。
func (s *AccountStore) currentSession(ctx context.Context, c redis.Cmdable, name string) (int64, error) {
	v, err := c.Get(ctx, UserIndexKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session index %q: %w", v, err)
	}
	return id, nil
}
