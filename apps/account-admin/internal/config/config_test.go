package config

import (
	"os"
	"testing"
)

var envKeys = []string{"REDIS_HOST", "REDIS_PORT", "REDIS_PASS", "ADMIN_USER", "AUDIT_LOG_FILE"}

func TestLoadDefaults(t *testing.T) {
	// 空文字ではdefaultが適用されないため、登録後に削除して終了時に復元させる
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ValkeyAddr() != "127.0.0.1:6379" {
		t.Errorf("ValkeyAddr() = %q, want %q", cfg.ValkeyAddr(), "127.0.0.1:6379")
	}
	if cfg.RedisPass != "" {
		t.Errorf("RedisPass = %q, want empty", cfg.RedisPass)
	}
	if cfg.AdminUser != "admin" {
		t.Errorf("AdminUser = %q, want %q", cfg.AdminUser, "admin")
	}
	if cfg.AuditLogFile != "account-admin-audit.log" {
		t.Errorf("AuditLogFile = %q, want %q", cfg.AuditLogFile, "account-admin-audit.log")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "valkey.local")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASS", "secret")
	t.Setenv("ADMIN_USER", "operator")
	t.Setenv("AUDIT_LOG_FILE", "/tmp/audit.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ValkeyAddr() != "valkey.local:6380" {
		t.Errorf("ValkeyAddr() = %q, want %q", cfg.ValkeyAddr(), "valkey.local:6380")
	}
	if cfg.RedisPass != "secret" {
		t.Errorf("RedisPass = %q, want %q", cfg.RedisPass, "secret")
	}
	if cfg.AdminUser != "operator" {
		t.Errorf("AdminUser = %q, want %q", cfg.AdminUser, "operator")
	}
	if cfg.AuditLogFile != "/tmp/audit.log" {
		t.Errorf("AuditLogFile = %q, want %q", cfg.AuditLogFile, "/tmp/audit.log")
	}
}

func TestValkeyOptions(t *testing.T) {
	cfg := &Config{RedisHost: "localhost", RedisPort: "6379", RedisPass: "pw"}

	opts := cfg.ValkeyOptions()

	if opts.Addr != "localhost:6379" {
		t.Errorf("Addr = %q, want %q", opts.Addr, "localhost:6379")
	}
	if opts.Password != "pw" {
		t.Errorf("Password = %q, want %q", opts.Password, "pw")
	}
	if opts.PoolSize != ValkeyPoolSize {
		t.Errorf("PoolSize = %d, want %d", opts.PoolSize, ValkeyPoolSize)
	}
	if opts.MaxRetries != ValkeyMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", opts.MaxRetries, ValkeyMaxRetries)
	}
	if opts.CommandTimeout != ValkeyCommandTimeout {
		t.Errorf("CommandTimeout = %v, want %v", opts.CommandTimeout, ValkeyCommandTimeout)
	}
}
