package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/pkg/apperr"
	"github.com/oyaguma3/account-session-gateway/pkg/valkey"
)

// accountStore はAccountStoreインターフェースの実装。
type accountStore struct {
	vc *ValkeyClient
}

// NewAccountStore は新しいAccountStoreを生成する。
func NewAccountStore(vc *ValkeyClient) AccountStore {
	return &accountStore{vc: vc}
}

// Register はアカウントを登録する。
// パスワードはbcryptでハッシュ化して保存し、残高は0で初期化する。
func (s *accountStore) Register(ctx context.Context, name, password string) error {
	if name == "" {
		return apperr.NewValidationError("name", "must not be empty")
	}
	if password == "" {
		return apperr.NewValidationError("password", "must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	key := accountKey(name)
	err = s.vc.Client().Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.ErrAccountExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, FieldPasswordHash, string(hash), FieldBalance, formatBalance(0))
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrAccountExists):
		return err
	case errors.Is(err, redis.TxFailedErr):
		// 同時登録で競合した
		return apperr.ErrAccountExists
	default:
		return wrapValkeyError("HSET", key, err)
	}
}

// Login はパスワードを検証し、新しいセッションIDを発行する。
// ユーザーごとに有効なセッションは1つのみ。
func (s *accountStore) Login(ctx context.Context, name, password string) (int64, error) {
	client := s.vc.Client()
	key := accountKey(name)

	hash, err := client.HGet(ctx, key, FieldPasswordHash).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return 0, apperr.ErrAccountNotFound
		}
		return 0, wrapValkeyError("HGET", key, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return 0, apperr.ErrIncorrectPassword
	}

	// 先にインデックスを予約し、ログイン済みの試行でセッションIDを消費しない
	idxKey := userIndexKey(name)
	ok, err := client.SetNX(ctx, idxKey, pendingSessionID, config.SessionTTL).Result()
	if err != nil {
		return 0, wrapValkeyError("SETNX", idxKey, err)
	}
	if !ok {
		return 0, apperr.ErrAlreadyLogged
	}

	sessionID, err := client.Incr(ctx, KeySessionSeq).Result()
	if err != nil {
		_ = client.Del(ctx, idxKey).Err()
		return 0, wrapValkeyError("INCR", KeySessionSeq, err)
	}

	sessKey := sessionKey(sessionID)
	_, err = client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessKey, name, config.SessionTTL)
		pipe.Set(ctx, idxKey, sessionID, config.SessionTTL)
		return nil
	})
	if err != nil {
		_ = client.Del(ctx, idxKey, sessKey).Err()
		return 0, wrapValkeyError("SET", sessKey, err)
	}

	return sessionID, nil
}

// Logout はセッションを削除する。
func (s *accountStore) Logout(ctx context.Context, sessionID int64) error {
	name, err := s.resolve(ctx, sessionID)
	if err != nil {
		return err
	}

	client := s.vc.Client()
	sessKey := sessionKey(sessionID)
	idxKey := userIndexKey(name)

	// インデックスが別セッションを指している場合は残す
	keys := []string{sessKey}
	current, err := client.Get(ctx, idxKey).Result()
	if err != nil && !valkey.IsKeyNotFound(err) {
		return wrapValkeyError("GET", idxKey, err)
	}
	if current == strconv.FormatInt(sessionID, 10) {
		keys = append(keys, idxKey)
	}

	if err := client.Del(ctx, keys...).Err(); err != nil {
		return wrapValkeyError("DEL", sessKey, err)
	}
	return nil
}

// Deposit は入金し、入金後の残高を返す。
func (s *accountStore) Deposit(ctx context.Context, sessionID int64, amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	name, err := s.resolve(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return s.updateBalance(ctx, name, func(balance float64) (float64, error) {
		return balance + amount, nil
	})
}

// Withdraw は出金し、出金後の残高を返す。
// 残高を超える出金はErrInsufficientFundsを返し、残高は変更しない。
func (s *accountStore) Withdraw(ctx context.Context, sessionID int64, amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}
	name, err := s.resolve(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return s.updateBalance(ctx, name, func(balance float64) (float64, error) {
		if balance < amount {
			return 0, apperr.ErrInsufficientFunds
		}
		return balance - amount, nil
	})
}

// Balance は残高を返す。
func (s *accountStore) Balance(ctx context.Context, sessionID int64) (float64, error) {
	name, err := s.resolve(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	key := accountKey(name)
	raw, err := s.vc.Client().HGet(ctx, key, FieldBalance).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return 0, apperr.ErrAccountNotFound
		}
		return 0, wrapValkeyError("HGET", key, err)
	}
	balance, err := parseBalance(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid balance %q", apperr.ErrValkeyCommand, raw)
	}
	return balance, nil
}

// resolve はセッションIDからユーザー名を取得し、セッションの有効期限を延長する。
func (s *accountStore) resolve(ctx context.Context, sessionID int64) (string, error) {
	client := s.vc.Client()
	sessKey := sessionKey(sessionID)

	name, err := client.Get(ctx, sessKey).Result()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return "", apperr.ErrSessionNotFound
		}
		return "", wrapValkeyError("GET", sessKey, err)
	}

	pipe := client.Pipeline()
	pipe.Expire(ctx, sessKey, config.SessionTTL)
	pipe.Expire(ctx, userIndexKey(name), config.SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", wrapValkeyError("EXPIRE", sessKey, err)
	}
	return name, nil
}

// updateBalance はWATCHによる楽観ロックで残高を更新する。
func (s *accountStore) updateBalance(ctx context.Context, name string, fn func(balance float64) (float64, error)) (float64, error) {
	key := accountKey(name)

	var result float64
	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, key, FieldBalance).Result()
		if err != nil {
			if valkey.IsKeyNotFound(err) {
				return apperr.ErrAccountNotFound
			}
			return err
		}
		balance, err := parseBalance(raw)
		if err != nil {
			return fmt.Errorf("%w: invalid balance %q", apperr.ErrValkeyCommand, raw)
		}

		next, err := fn(balance)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, FieldBalance, formatBalance(next))
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for i := 0; i < config.MaxTxRetries; i++ {
		err := s.vc.Client().Watch(ctx, txf, key)
		switch {
		case err == nil:
			return result, nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, apperr.ErrInsufficientFunds),
			errors.Is(err, apperr.ErrAccountNotFound),
			errors.Is(err, apperr.ErrValkeyCommand):
			return 0, err
		default:
			return 0, wrapValkeyError("WATCH", key, err)
		}
	}
	return 0, wrapValkeyError("WATCH", key, redis.TxFailedErr)
}

// validateAmount は金額が正の有限値かを検証する。
func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidAmount, amount)
	}
	return nil
}
