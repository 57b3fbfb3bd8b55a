package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/handler"
	"github.com/oyaguma3/account-session-gateway/apps/account-server/internal/store"
	"github.com/oyaguma3/account-session-gateway/pkg/httputil"
)

func newTestServer(t *testing.T) *httputil.Server {
	t.Helper()
	mr := miniredis.RunT(t)
	host, port, _ := net.SplitHostPort(mr.Addr())
	cfg := &config.Config{RedisHost: host, RedisPort: port, ListenAddr: ":0", GinMode: gin.TestMode}

	vc, err := store.NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { vc.Close() })

	return New(cfg, handler.NewAccountHandler(store.NewAccountStore(vc), cfg))
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/api/v1/accounts", `{"name":"alice","password":"pass"}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/login", `{"name":"alice","password":"pass"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/balance", `{"session_id":1}`, http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(httputil.HeaderTraceID, "trace-xyz")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.want)
		}
		if got := w.Header().Get(httputil.HeaderTraceID); got != "trace-xyz" {
			t.Errorf("%s %s X-Trace-ID = %q, want %q", tt.method, tt.path, got, "trace-xyz")
		}
	}
}

func TestBalanceAfterLogin(t *testing.T) {
	h := newTestServer(t).Handler()

	post := func(path, body string) map[string]any {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		return got
	}

	post("/api/v1/accounts", `{"name":"alice","password":"pass"}`)
	login := post("/api/v1/login", `{"name":"alice","password":"pass"}`)
	if login["status"] != "success" {
		t.Fatalf("login = %v", login)
	}

	got := post("/api/v1/balance", `{"session_id":1}`)
	if got["status"] != "success" || got["balance"] != float64(0) {
		t.Errorf("balance = %v", got)
	}
}
