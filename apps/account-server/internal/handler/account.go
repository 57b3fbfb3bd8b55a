// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/store"
	"github.com/oyaguma3/account-session-gateway/pkg/apperr"
	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
	"github.com/oyaguma3/account-session-gateway/pkg/logging"
	"github.com/oyaguma3/account-session-gateway/pkg/model"
)

// AccountHandler はアカウントAPIのハンドラー。
type AccountHandler struct {
	store  store.AccountStore
	fields *logging.CommonFields
}

// NewAccountHandler は新しいAccountHandlerを生成する。
func NewAccountHandler(s store.AccountStore, cfg *config.Config) *AccountHandler {
	return &AccountHandler{
		store:  s,
		fields: logging.NewCommonFields(logging.NewMasker(cfg.LogMaskUser)),
	}
}

// HandleRegister はPOST /api/v1/accounts のハンドラー。
func (h *AccountHandler) HandleRegister(c *gin.Context) {
	var req model.RegisterRequest
	if !h.bind(c, &req) {
		return
	}
	traceID := httputil.TraceID(c)

	err := h.store.Register(c.Request.Context(), req.Name, req.Password)
	var vErr *apperr.ValidationError
	switch {
	case err == nil:
		slog.Info("account registered", h.fields.AccountLogFields(traceID, "ACCOUNT_REGISTERED", req.Name)...)
		c.JSON(http.StatusCreated, model.NewStatusResponse(model.StatusSuccess))
	case errors.As(err, &vErr):
		httputil.WriteError(c, httputil.BadRequest(vErr.Error()))
	case errors.Is(err, apperr.ErrAccountExists):
		httputil.WriteError(c, httputil.Conflict("Account already exists"))
	default:
		h.logStoreError(traceID, err)
		httputil.WriteError(c, httputil.InternalServerError("Failed to register account"))
	}
}

// HandleLogin はPOST /api/v1/login のハンドラー。
func (h *AccountHandler) HandleLogin(c *gin.Context) {
	var req model.LoginRequest
	if !h.bind(c, &req) {
		return
	}
	traceID := httputil.TraceID(c)

	sessionID, err := h.store.Login(c.Request.Context(), req.Name, req.Password)
	switch {
	case err == nil:
		slog.Info("login succeeded",
			append(h.fields.AccountLogFields(traceID, "LOGIN_OK", req.Name),
				logging.WithSessionID(sessionID))...,
		)
		c.JSON(http.StatusOK, model.NewSessionResponse(model.StatusSuccess, sessionID))
	case errors.Is(err, apperr.ErrAccountNotFound), errors.Is(err, apperr.ErrIncorrectPassword):
		slog.Warn("login rejected",
			append(h.fields.AccountLogFields(traceID, "LOGIN_NG", req.Name),
				logging.WithError(err))...,
		)
		c.JSON(http.StatusOK, model.NewStatusResponse(model.StatusNoUserIncorrectPassword))
	case errors.Is(err, apperr.ErrAlreadyLogged):
		slog.Warn("login rejected",
			append(h.fields.AccountLogFields(traceID, "LOGIN_NG", req.Name),
				logging.WithError(err))...,
		)
		c.JSON(http.StatusOK, model.NewStatusResponse(model.StatusAlreadyLogged))
	default:
		h.logStoreError(traceID, err)
		c.JSON(http.StatusOK, model.NewStatusResponse(model.StatusUndefinedError))
	}
}

// HandleLogout はPOST /api/v1/logout のハンドラー。
func (h *AccountHandler) HandleLogout(c *gin.Context) {
	var req model.LogoutRequest
	if !h.bind(c, &req) {
		return
	}

	err := h.store.Logout(c.Request.Context(), req.SessionID)
	if err == nil {
		slog.Info("logout succeeded",
			logging.WithTraceID(httputil.TraceID(c)),
			logging.WithEventID("LOGOUT_OK"),
			logging.WithSessionID(req.SessionID),
		)
		c.JSON(http.StatusOK, model.NewSessionResponse(model.StatusSuccess, req.SessionID))
		return
	}
	c.JSON(http.StatusOK, model.NewStatusResponse(h.statusOf(c, err)))
}

// HandleDeposit はPOST /api/v1/deposit のハンドラー。
func (h *AccountHandler) HandleDeposit(c *gin.Context) {
	var req model.TransactionRequest
	if !h.bind(c, &req) {
		return
	}

	balance, err := h.store.Deposit(c.Request.Context(), req.SessionID, req.Amount)
	h.respondBalance(c, req.SessionID, balance, err)
}

// HandleWithdraw はPOST /api/v1/withdraw のハンドラー。
func (h *AccountHandler) HandleWithdraw(c *gin.Context) {
	var req model.TransactionRequest
	if !h.bind(c, &req) {
		return
	}

	balance, err := h.store.Withdraw(c.Request.Context(), req.SessionID, req.Amount)
	h.respondBalance(c, req.SessionID, balance, err)
}

// HandleBalance はPOST /api/v1/balance のハンドラー。
func (h *AccountHandler) HandleBalance(c *gin.Context) {
	var req model.BalanceRequest
	if !h.bind(c, &req) {
		return
	}

	balance, err := h.store.Balance(c.Request.Context(), req.SessionID)
	h.respondBalance(c, req.SessionID, balance, err)
}

// HandleHealth はGET /health のハンドラー。
func (h *AccountHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AccountHandler) respondBalance(c *gin.Context, sessionID int64, balance float64, err error) {
	if err != nil {
		c.JSON(http.StatusOK, model.NewStatusResponse(h.statusOf(c, err)))
		return
	}
	slog.Info("transaction succeeded",
		logging.WithTraceID(httputil.TraceID(c)),
		logging.WithEventID("TXN_OK"),
		logging.WithSessionID(sessionID),
	)
	c.JSON(http.StatusOK, model.NewBalanceResponse(model.StatusSuccess, balance))
}

// statusOf はストアのエラーを応答ステータスに変換する。
func (h *AccountHandler) statusOf(c *gin.Context, err error) model.Status {
	traceID := httputil.TraceID(c)
	switch {
	case errors.Is(err, apperr.ErrSessionNotFound):
		return model.StatusNotLogged
	case errors.Is(err, apperr.ErrInsufficientFunds):
		return model.StatusNoMoney
	case errors.Is(err, apperr.ErrInvalidAmount), errors.Is(err, apperr.ErrAccountNotFound):
		slog.Warn("transaction rejected",
			logging.WithTraceID(traceID),
			logging.WithEventID("TXN_NG"),
			logging.WithError(err),
		)
		return model.StatusUndefinedError
	default:
		h.logStoreError(traceID, err)
		return model.StatusUndefinedError
	}
}

func (h *AccountHandler) logStoreError(traceID string, err error) {
	eventID := "VALKEY_CMD_ERR"
	if errors.Is(err, apperr.ErrValkeyConnection) {
		eventID = "VALKEY_CONN_ERR"
	}
	slog.Error("store operation failed",
		logging.WithTraceID(traceID),
		logging.WithEventID(eventID),
		logging.WithError(err),
	)
}

// bind はリクエストボディをバインドする。失敗時は400を返しfalseを返す。
func (h *AccountHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(httputil.TraceID(c)),
			logging.WithEventID("BAD_REQUEST"),
			logging.WithError(err),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return false
	}
	return true
}
