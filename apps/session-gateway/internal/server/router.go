package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/handler"
)

// SetupRouter はクライアント向けの /api/v1/sessions 配下を登録する。
func SetupRouter(engine *gin.Engine, h *handler.SessionHandler) {
	engine.GET("/health", h.HandleHealth)

	sessions := engine.Group("/api/v1/sessions")
	sessions.POST("/login", h.HandleLogin)
	sessions.POST("/logout", h.HandleLogout)
	sessions.POST("/deposit", h.HandleDeposit)
	sessions.POST("/withdraw", h.HandleWithdraw)
	sessions.POST("/balance", h.HandleBalance)
}
