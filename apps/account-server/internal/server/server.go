// Package server はAccount ServerのHTTPサーバーを組み立てる。
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/handler"
	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
)

// New はルーティング済みのサーバーを生成する。
func New(cfg *config.Config, h *handler.AccountHandler) *httputil.Server {
	engine := httputil.NewEngine(cfg.GinMode)
	SetupRouter(engine, h)
	return httputil.NewServer(cfg.ListenAddr, engine, config.ReadHeaderTimeout)
}

// SetupRouter は /health と /api/v1 配下のエンドポイントを登録する。
func SetupRouter(engine *gin.Engine, h *handler.AccountHandler) {
	engine.GET("/health", h.HandleHealth)

	v1 := engine.Group("/api/v1")
	v1.POST("/accounts", h.HandleRegister)
	v1.POST("/login", h.HandleLogin)
	v1.POST("/logout", h.HandleLogout)
	v1.POST("/deposit", h.HandleDeposit)
	v1.POST("/withdraw", h.HandleWithdraw)
	v1.POST("/balance", h.HandleBalance)
}
