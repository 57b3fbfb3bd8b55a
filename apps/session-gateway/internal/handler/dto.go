package handler

import "github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/session"

// LoginRequest はPOST /api/v1/sessions/login のリクエストボディ。
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LogoutRequest はPOST /api/v1/sessions/logout のリクエストボディ。
type LogoutRequest struct {
	Name      string `json:"name" binding:"required"`
	SessionID int64  `json:"session_id"`
}

// TransactionRequest はPOST /api/v1/sessions/deposit, withdraw のリクエストボディ。
type TransactionRequest struct {
	Name      string  `json:"name" binding:"required"`
	SessionID int64   `json:"session_id"`
	Amount    float64 `json:"amount"`
}

// BalanceRequest はPOST /api/v1/sessions/balance のリクエストボディ。
type BalanceRequest struct {
	Name      string `json:"name" binding:"required"`
	SessionID int64  `json:"session_id"`
}

// ResultResponse は操作結果のレスポンスボディ。
type ResultResponse struct {
	Code    session.Code `json:"code"`
	Payload any          `json:"payload,omitempty"`
}

// HealthResponse はGET /health のレスポンスボディ。
type HealthResponse struct {
	Status string `json:"status"`
}

func newResultResponse(res session.Result) ResultResponse {
	return ResultResponse{Code: res.Code, Payload: res.Payload}
}
