// Package audit は管理操作の監査ログを提供する。
package audit

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Operation は監査ログの操作種別を表す。
type Operation string

const (
	// OpCreate は作成操作
	OpCreate Operation = "create"
	// OpUpdate は更新操作
	OpUpdate Operation = "update"
	// OpDelete は削除操作
	OpDelete Operation = "delete"
	// OpTerminate はセッション強制終了
	OpTerminate Operation = "terminate"
)

// TargetType は監査ログの対象種別を表す。
type TargetType string

const (
	// TargetAccount はアカウント
	TargetAccount TargetType = "account"
	// TargetSession はセッション
	TargetSession TargetType = "session"
)

// Entry は監査ログエントリを表す。
type Entry struct {
	Time       string     `json:"time"`
	Level      string     `json:"level"`
	App        string     `json:"app"`
	EventID    string     `json:"event_id"`
	Msg        string     `json:"msg"`
	Operation  Operation  `json:"operation"`
	TargetType TargetType `json:"target_type"`
	TargetKey  string     `json:"target_key"`
	TargetUser string     `json:"target_user,omitempty"`
	AdminUser  string     `json:"admin_user"`
	Details    string     `json:"details,omitempty"`
}

// Logger は監査ログをJSON Lines形式で出力する。
type Logger struct {
	writer    io.Writer
	adminUser string
	now       func() time.Time
	mu        sync.Mutex
}

// NewLogger は指定されたWriterに出力するLoggerを生成する。
func NewLogger(writer io.Writer, adminUser string) *Logger {
	return &Logger{
		writer:    writer,
		adminUser: adminUser,
		now:       time.Now,
	}
}

// LogWithDetails は詳細情報付きで監査ログエントリを出力する。
func (l *Logger) LogWithDetails(op Operation, targetType TargetType, targetKey, targetUser, msg, details string) {
	entry := Entry{
		Time:       l.now().UTC().Format(time.RFC3339),
		Level:      "INFO",
		App:        "account-admin",
		EventID:    "AUDIT_LOG",
		Msg:        msg,
		Operation:  op,
		TargetType: targetType,
		TargetKey:  targetKey,
		TargetUser: targetUser,
		AdminUser:  l.adminUser,
		Details:    details,
	}

	// "balance=10->25" の ">" を \u003e にしないようHTMLエスケープを無効にする
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write(buf.Bytes())
}

// LogCreate はアカウント作成のログを出力する。
func (l *Logger) LogCreate(targetKey, name string) {
	l.LogWithDetails(OpCreate, TargetAccount, targetKey, name, "account created", "")
}

// LogBalanceUpdate は残高変更のログを出力する。
func (l *Logger) LogBalanceUpdate(targetKey, name, details string) {
	l.LogWithDetails(OpUpdate, TargetAccount, targetKey, name, "account balance updated", details)
}

// LogDelete はアカウント削除のログを出力する。
func (l *Logger) LogDelete(targetKey, name string) {
	l.LogWithDetails(OpDelete, TargetAccount, targetKey, name, "account deleted", "")
}

// LogTerminate はセッション強制終了のログを出力する。
func (l *Logger) LogTerminate(targetKey, name string) {
	l.LogWithDetails(OpTerminate, TargetSession, targetKey, name, "session terminated", "")
}
