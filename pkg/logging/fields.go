package logging

import "log/slog"

// ログの属性キー。両アプリで同じキー名を使う。
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldUserName   = "user_name"
	FieldSessionID  = "session_id"
	FieldOutcome    = "outcome"
)

func WithTraceID(traceID string) slog.Attr { return slog.String(FieldTraceID, traceID) }

// WithEventID はLOGIN_OKなどのイベント識別子を付与する。
func WithEventID(eventID string) slog.Attr { return slog.String(FieldEventID, eventID) }

func WithLatency(ms int64) slog.Attr { return slog.Int64(FieldLatencyMs, ms) }

func WithHTTPStatus(status int) slog.Attr { return slog.Int(FieldHTTPStatus, status) }

func WithSessionID(id int64) slog.Attr { return slog.Int64(FieldSessionID, id) }

// WithOutcome はクライアントに返した結果コード(success, incorrect_password等)を付与する。
func WithOutcome(outcome string) slog.Attr { return slog.String(FieldOutcome, outcome) }

// WithError はエラー文字列を付与する。nilの場合は値を空にする。
func WithError(err error) slog.Attr {
	var msg string
	if err != nil {
		msg = err.Error()
	}
	return slog.String(FieldError, msg)
}

// CommonFields はユーザー名を含むログ属性を組み立てる。
// ユーザー名は常にMasker経由で出力する。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields はCommonFieldsを生成する。masker が nil の場合はマスキングしない。
func NewCommonFields(masker *Masker) *CommonFields {
	return &CommonFields{masker: masker}
}

func (cf *CommonFields) WithUserName(name string) slog.Attr {
	return slog.String(FieldUserName, cf.masker.UserName(name))
}

// AccountLogFields はアカウント操作ログの先頭に付ける trace_id, event_id, user_name を返す。
// slog.Info(msg, fields...) にそのまま渡せるよう []any で返す。
func (cf *CommonFields) AccountLogFields(traceID, eventID, name string) []any {
	return []any{WithTraceID(traceID), WithEventID(eventID), cf.WithUserName(name)}
}
