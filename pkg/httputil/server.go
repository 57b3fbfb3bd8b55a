package httputil

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewEngine はトレースID付与・アクセスログ・パニック復旧を組み込んだgin.Engineを返す。
func NewEngine(mode string) *gin.Engine {
	gin.SetMode(mode)
	engine := gin.New()
	engine.Use(TraceIDMiddleware(), LoggingMiddleware(), RecoveryMiddleware())
	return engine
}

// Server はhttp.Serverの起動と停止をまとめる。
type Server struct {
	srv *http.Server
}

// NewServer はServerを生成する。
func NewServer(addr string, handler http.Handler, readHeaderTimeout time.Duration) *Server {
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run は待ち受けを開始する。Shutdownによる終了時はnilを返す。
func (s *Server) Run() error {
	slog.Info("starting server", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server")
	return s.srv.Shutdown(ctx)
}

// ServeUntil はctxが終了するまで待ち受け、その後timeout以内に処理中のリクエストを終えて停止する。
func (s *Server) ServeUntil(ctx context.Context, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
