// Package account はAccount APIクライアントを提供する。
package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/config"
	"github.com/oyaguma3/account-session-gateway/pkg/logging"
	"github.com/oyaguma3/account-session-gateway/pkg/model"
)

// Client はAccount APIクライアント。session.RemoteServerを実装する。
// 全リクエストは単一のサーキットブレーカーを通る。
type Client struct {
	http *resty.Client
	cb   *gobreaker.CircuitBreaker
}

// NewClient は新しいAccount APIクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.AccountAPIURL, "/")).
			SetTimeout(config.AccountRequestTimeout).
			SetHeader(HeaderContentType, ContentTypeJSON),
		cb: gobreaker.NewCircuitBreaker(breakerSettings()),
	}
}

func breakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: logStateChange,
	}
}

var stateEvents = map[gobreaker.State]string{
	gobreaker.StateOpen:     "CB_OPEN",
	gobreaker.StateHalfOpen: "CB_HALF_OPEN",
	gobreaker.StateClosed:   "CB_CLOSE",
}

func logStateChange(name string, from, to gobreaker.State) {
	level := slog.LevelInfo
	if to == gobreaker.StateOpen {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "circuit breaker state changed",
		logging.WithEventID(stateEvents[to]),
		"cb_name", name,
		"from", from.String(),
		"to", to.String(),
	)
}

func (c *Client) Login(ctx context.Context, name, password string) (*model.Response, error) {
	return c.post(ctx, PathLogin, &model.LoginRequest{Name: name, Password: password})
}

func (c *Client) Logout(ctx context.Context, sessionID int64) (*model.Response, error) {
	return c.post(ctx, PathLogout, &model.LogoutRequest{SessionID: sessionID})
}

func (c *Client) Deposit(ctx context.Context, sessionID int64, amount float64) (*model.Response, error) {
	return c.post(ctx, PathDeposit, &model.TransactionRequest{SessionID: sessionID, Amount: amount})
}

func (c *Client) Withdraw(ctx context.Context, sessionID int64, amount float64) (*model.Response, error) {
	return c.post(ctx, PathWithdraw, &model.TransactionRequest{SessionID: sessionID, Amount: amount})
}

func (c *Client) GetBalance(ctx context.Context, sessionID int64) (*model.Response, error) {
	return c.post(ctx, PathBalance, &model.BalanceRequest{SessionID: sessionID})
}

// post はブレーカー経由でJSONをPOSTする。
// 4xxはブレーカーの失敗に数えないため、Executeの戻り値として受け取ってからエラーに戻す。
func (c *Client) post(ctx context.Context, path string, body any) (*model.Response, error) {
	traceID, ok := TraceIDFromContext(ctx)
	if !ok {
		return nil, ErrTraceIDMissing
	}
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetBody(body).
			Post(path)
		if err != nil {
			return nil, &ConnectionError{Path: path, Cause: err}
		}
		if resp.StatusCode() == http.StatusOK {
			return resp.Body(), nil
		}

		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		slog.Error("account api error",
			logging.WithTraceID(traceID),
			logging.WithEventID("ACCOUNT_API_ERR"),
			logging.WithError(apiErr),
			logging.WithHTTPStatus(apiErr.StatusCode),
			logging.WithLatency(time.Since(start).Milliseconds()),
			"path", path,
		)
		if apiErr.IsServerError() {
			return nil, apiErr
		}
		return apiErr, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, ErrCircuitOpen
	case err != nil:
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			slog.Error("account api connection failed",
				logging.WithTraceID(traceID),
				logging.WithEventID("ACCOUNT_API_ERR"),
				logging.WithError(err),
				"path", path,
			)
		}
		return nil, err
	}

	switch v := result.(type) {
	case *APIError:
		return nil, v
	case []byte:
		slog.Debug("account api success",
			logging.WithTraceID(traceID),
			logging.WithLatency(time.Since(start).Milliseconds()),
			"path", path,
		)
		return parseResponse(v)
	}
	return nil, ErrInvalidResponse
}

// parseResponse は応答本文をResponseに変換する。statusが無い応答は不正とみなす。
func parseResponse(body []byte) (*model.Response, error) {
	var resp model.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.Status == "" {
		return nil, fmt.Errorf("%w: status missing", ErrInvalidResponse)
	}
	return &resp, nil
}

type traceIDKey struct{}

// WithTraceID はAccount APIへ伝搬するトレースIDをコンテキストに設定する。
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext はコンテキストのトレースIDを返す。空文字列は未設定として扱う。
func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKey{}).(string)
	return traceID, ok && traceID != ""
}
