package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
)

var (
	ErrCircuitOpen     = errors.New("account api circuit open")
	ErrInvalidResponse = errors.New("malformed account api response")
	ErrTraceIDMissing  = errors.New("trace id not set on context")
)

// APIError はAccount APIが200以外を返した場合のエラー。
// 本文がproblem+jsonなら Problem に、そうでなければ本文を Message に保持する。
type APIError struct {
	StatusCode int
	Message    string
	Problem    *httputil.ProblemDetail
}

func newAPIError(status int, body []byte) *APIError {
	var p httputil.ProblemDetail
	if err := json.Unmarshal(body, &p); err == nil && p.Title != "" {
		return &APIError{StatusCode: status, Message: p.Title, Problem: &p}
	}
	return &APIError{StatusCode: status, Message: string(body)}
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Problem != nil && e.Problem.Detail != "" {
		msg += ": " + e.Problem.Detail
	}
	return fmt.Sprintf("account api returned %d (%s)", e.StatusCode, msg)
}

// IsServerError は5xxならtrueを返す。5xxのみブレーカーの失敗として数える。
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// ConnectionError はAccount APIに到達できなかったことを表す。
type ConnectionError struct {
	Path  string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("account api unreachable (%s): %v", e.Path, e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
