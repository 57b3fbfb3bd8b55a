// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/account"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/session"
	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
	"github.com/oyaguma3/account-session-gateway/pkg/logging"
)

// イベントID
const (
	eventLoginOK    = "LOGIN_OK"
	eventLoginNG    = "LOGIN_NG"
	eventLogoutOK   = "LOGOUT_OK"
	eventLogoutNG   = "LOGOUT_NG"
	eventTxnOK      = "TXN_OK"
	eventTxnNG      = "TXN_NG"
	eventBadRequest = "BAD_REQUEST"
)

// SessionHandler はセッション操作APIのハンドラー。
type SessionHandler struct {
	manager SessionManager
	fields  *logging.CommonFields
}

// NewSessionHandler は新しいSessionHandlerを生成する。
func NewSessionHandler(manager SessionManager, cfg *config.Config) *SessionHandler {
	return &SessionHandler{
		manager: manager,
		fields:  logging.NewCommonFields(logging.NewMasker(cfg.LogMaskUser)),
	}
}

// HandleLogin はPOST /api/v1/sessions/login のハンドラー。
func (h *SessionHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if !h.bind(c, &req) {
		return
	}

	res := h.manager.Login(h.requestContext(c), req.Name, req.Password)
	h.respond(c, "login", req.Name, eventLoginOK, eventLoginNG, res)
}

// HandleLogout はPOST /api/v1/sessions/logout のハンドラー。
func (h *SessionHandler) HandleLogout(c *gin.Context) {
	var req LogoutRequest
	if !h.bind(c, &req) {
		return
	}

	res := h.manager.Logout(h.requestContext(c), req.Name, req.SessionID)
	h.respond(c, "logout", req.Name, eventLogoutOK, eventLogoutNG, res)
}

// HandleDeposit はPOST /api/v1/sessions/deposit のハンドラー。
func (h *SessionHandler) HandleDeposit(c *gin.Context) {
	var req TransactionRequest
	if !h.bind(c, &req) {
		return
	}

	res := h.manager.Deposit(h.requestContext(c), req.Name, req.SessionID, req.Amount)
	h.respond(c, "deposit", req.Name, eventTxnOK, eventTxnNG, res)
}

// HandleWithdraw はPOST /api/v1/sessions/withdraw のハンドラー。
func (h *SessionHandler) HandleWithdraw(c *gin.Context) {
	var req TransactionRequest
	if !h.bind(c, &req) {
		return
	}

	res := h.manager.Withdraw(h.requestContext(c), req.Name, req.SessionID, req.Amount)
	h.respond(c, "withdraw", req.Name, eventTxnOK, eventTxnNG, res)
}

// HandleBalance はPOST /api/v1/sessions/balance のハンドラー。
func (h *SessionHandler) HandleBalance(c *gin.Context) {
	var req BalanceRequest
	if !h.bind(c, &req) {
		return
	}

	res := h.manager.GetBalance(h.requestContext(c), req.Name, req.SessionID)
	h.respond(c, "balance", req.Name, eventTxnOK, eventTxnNG, res)
}

// HandleHealth はGET /health のハンドラー。
func (h *SessionHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// bind はリクエストボディをバインドする。失敗時は400を返しfalseを返す。
func (h *SessionHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(httputil.TraceID(c)),
			logging.WithEventID(eventBadRequest),
			logging.WithError(err),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// requestContext はTrace IDを設定したコンテキストを返す。
func (h *SessionHandler) requestContext(c *gin.Context) context.Context {
	return account.WithTraceID(c.Request.Context(), httputil.TraceID(c))
}

// respond は操作結果をログ出力し、200で返す。
func (h *SessionHandler) respond(c *gin.Context, op, name, okEvent, ngEvent string, res session.Result) {
	traceID := httputil.TraceID(c)
	if res.Code == session.Succeeded {
		slog.Info(op+" succeeded",
			append(h.fields.AccountLogFields(traceID, okEvent, name),
				logging.WithOutcome(res.Code.String()))...,
		)
	} else {
		slog.Warn(op+" rejected",
			append(h.fields.AccountLogFields(traceID, ngEvent, name),
				logging.WithOutcome(res.Code.String()))...,
		)
	}
	c.JSON(http.StatusOK, newResultResponse(res))
}
