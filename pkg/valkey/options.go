// Package valkey はValkeyクライアントの共通機能を提供する。
package valkey

import (
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options はValkey接続設定。
// 読み書きのタイムアウトは CommandTimeout に統一している。
type Options struct {
	Addr            string
	Password        string
	DB              int
	DialTimeout     time.Duration
	CommandTimeout  time.Duration
	PoolSize        int
	MinIdleConns    int
	MaxRetries      int // -1でリトライ無効
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
}

// DefaultOptions はローカルのValkeyに接続する既定値を返す。
func DefaultOptions() *Options {
	return &Options{
		Addr:            "localhost:6379",
		DialTimeout:     3 * time.Second,
		CommandTimeout:  2 * time.Second,
		PoolSize:        10,
		MinIdleConns:    2,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: time.Second,
	}
}

func (o *Options) WithAddr(addr string) *Options {
	o.Addr = addr
	return o
}

func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithTimeouts は接続とコマンドのタイムアウトを設定する。
func (o *Options) WithTimeouts(dial, command time.Duration) *Options {
	o.DialTimeout = dial
	o.CommandTimeout = command
	return o
}

// WithRetries はコマンドの再試行回数と待ち時間の範囲を設定する。
func (o *Options) WithRetries(maxRetries int, minBackoff, maxBackoff time.Duration) *Options {
	o.MaxRetries = maxRetries
	o.MinRetryBackoff = minBackoff
	o.MaxRetryBackoff = maxBackoff
	return o
}

// WithPool はコネクションプールの大きさを設定する。
func (o *Options) WithPool(size, minIdle int) *Options {
	o.PoolSize = size
	o.MinIdleConns = minIdle
	return o
}

func (o *Options) redisOptions() *redis.Options {
	return &redis.Options{
		Addr:            o.Addr,
		Password:        o.Password,
		DB:              o.DB,
		DialTimeout:     o.DialTimeout,
		ReadTimeout:     o.CommandTimeout,
		WriteTimeout:    o.CommandTimeout,
		PoolSize:        o.PoolSize,
		MinIdleConns:    o.MinIdleConns,
		MaxRetries:      o.MaxRetries,
		MinRetryBackoff: o.MinRetryBackoff,
		MaxRetryBackoff: o.MaxRetryBackoff,
	}
}

// BuildAddr はホストとポートを "host:port" 形式に結合する。IPv6アドレスは角括弧で囲む。
func BuildAddr(host, port string) string {
	return net.JoinHostPort(host, port)
}
