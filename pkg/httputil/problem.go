// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import "net/http"

// ContentType はRFC 7807で定義されたContent-Typeヘッダー値。
const ContentType = "application/problem+json"

// ProblemDetail はRFC 7807準拠のエラーレスポンス。
// trace_id は拡張メンバーで、ログとレスポンスを突き合わせるために使う。
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"` // リクエストパス
	TraceID  string `json:"trace_id,omitempty"`
}

// NewProblemDetail はステータスコードからタイトルを決めてProblemDetailを生成する。
func NewProblemDetail(status int, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

// BadRequest は400 Bad Requestのエラーレスポンスを生成する。
func BadRequest(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusBadRequest, detail)
}

// Conflict は409 Conflictのエラーレスポンスを生成する。
func Conflict(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusConflict, detail)
}

// InternalServerError は500 Internal Server Errorのエラーレスポンスを生成する。
func InternalServerError(detail string) *ProblemDetail {
	return NewProblemDetail(http.StatusInternalServerError, detail)
}

// withRequest はリクエスト由来の拡張情報を設定したコピーを返す。
func (p *ProblemDetail) withRequest(instance, traceID string) *ProblemDetail {
	cp := *p
	cp.Instance = instance
	cp.TraceID = traceID
	return &cp
}
