// Package main はAccount Serverのエントリーポイント。
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/handler"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/server"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/store"
	"github.com/oyaguma3/account-session-gateway/pkg/logging"
)

func main() {
	os.Exit(run())
}

// run は終了コードを返す。deferしたValkeyのCloseを確実に実行するためmainから分けている。
func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	logging.Setup(os.Stdout, "account-server", cfg.LogLevel)

	slog.Info("starting account-server",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
	)

	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey",
			logging.WithEventID("VALKEY_CONN_ERR"),
			logging.WithError(err),
		)
		return 1
	}
	defer valkeyClient.Close()
	slog.Info("connected to Valkey", "addr", cfg.ValkeyAddr())

	accountHandler := handler.NewAccountHandler(store.NewAccountStore(valkeyClient), cfg)
	srv := server.New(cfg, accountHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.ServeUntil(ctx, config.ShutdownTimeout); err != nil {
		slog.Error("server error", "error", err)
		return 1
	}
	slog.Info("server stopped")
	return 0
}
