// Package server はSession GatewayのHTTPサーバーを組み立てる。
package server

import (
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/handler"
	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
)

// New はルーティング済みのサーバーを生成する。
func New(cfg *config.Config, h *handler.SessionHandler) *httputil.Server {
	engine := httputil.NewEngine(cfg.GinMode)
	SetupRouter(engine, h)
	return httputil.NewServer(cfg.ListenAddr, engine, config.ReadHeaderTimeout)
}
