// Package main はSession Gatewayのエントリーポイント。
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/account"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/credential"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/handler"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/server"
	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/session"
	"github.com/oyaguma3/account-session-gateway/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(os.Stdout, "session-gateway", cfg.LogLevel)

	slog.Info("starting session-gateway",
		"listen_addr", cfg.ListenAddr,
		"account_api_url", cfg.AccountAPIURL,
		"log_level", cfg.LogLevel,
	)

	manager := session.NewManager(account.NewClient(cfg), credential.NewHardener(cfg.PasswordPepper))
	srv := server.New(cfg, handler.NewSessionHandler(manager, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ServeUntil(ctx, config.ShutdownTimeout); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
