// Package model は共通データ構造体を提供する。
package model

// Status はアカウントサーバーが返す応答ステータス。
type Status string

const (
	// StatusSuccess は処理成功
	StatusSuccess Status = "success"
	// StatusAlreadyLogged はログイン済み
	StatusAlreadyLogged Status = "already_logged"
	// StatusNotLogged は未ログイン（またはセッション失効）
	StatusNotLogged Status = "not_logged"
	// StatusNoUserIncorrectPassword はユーザー不在またはパスワード不一致
	StatusNoUserIncorrectPassword Status = "no_user_incorrect_password"
	// StatusNoMoney は残高不足
	StatusNoMoney Status = "no_money"
	// StatusUndefinedError はその他のエラー
	StatusUndefinedError Status = "undefined_error"
)

// Known は定義済みのステータスかどうかを返す。
func (s Status) Known() bool {
	switch s {
	case StatusSuccess, StatusAlreadyLogged, StatusNotLogged,
		StatusNoUserIncorrectPassword, StatusNoMoney, StatusUndefinedError:
		return true
	}
	return false
}

// LoginRequest はPOST /api/v1/login のリクエストボディ。
// Passwordはハードニング済みの値であり平文ではない。
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LogoutRequest はPOST /api/v1/logout のリクエストボディ。
type LogoutRequest struct {
	SessionID int64 `json:"session_id"`
}

// TransactionRequest はPOST /api/v1/deposit, /api/v1/withdraw のリクエストボディ。
type TransactionRequest struct {
	SessionID int64   `json:"session_id"`
	Amount    float64 `json:"amount"`
}

// BalanceRequest はPOST /api/v1/balance のリクエストボディ。
type BalanceRequest struct {
	SessionID int64 `json:"session_id"`
}

// RegisterRequest はPOST /api/v1/accounts のリクエストボディ。
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Response はアカウントサーバーの応答。
// SessionIDはlogin/logout、Balanceは入出金・残高照会でのみ設定される。
type Response struct {
	Status    Status   `json:"status"`
	SessionID *int64   `json:"session_id,omitempty"`
	Balance   *float64 `json:"balance,omitempty"`
}

// NewSessionResponse はセッションIDを伴うResponseを生成する。
func NewSessionResponse(status Status, sessionID int64) *Response {
	return &Response{Status: status, SessionID: &sessionID}
}

// NewBalanceResponse は残高を伴うResponseを生成する。
func NewBalanceResponse(status Status, balance float64) *Response {
	return &Response{Status: status, Balance: &balance}
}

// NewStatusResponse はペイロードなしのResponseを生成する。
func NewStatusResponse(status Status) *Response {
	return &Response{Status: status}
}
