// Package session はアカウントサーバーとのセッション整合性を管理する。
package session

// Code は操作結果の区分。
type Code int

const (
	// Succeeded は処理成功
	Succeeded Code = iota
	// AlreadyLogged はログイン済み
	AlreadyLogged
	// NotLogged は未ログイン
	NotLogged
	// IncorrectSession はセッションID不一致
	IncorrectSession
	// NoUserIncorrectPassword はユーザー不在またはパスワード不一致
	NoUserIncorrectPassword
	// InsufficientFunds は残高不足
	InsufficientFunds
	// UndefinedError はその他のエラー
	UndefinedError
)

var codeNames = map[Code]string{
	Succeeded:               "succeeded",
	AlreadyLogged:           "already_logged",
	NotLogged:               "not_logged",
	IncorrectSession:        "incorrect_session",
	NoUserIncorrectPassword: "no_user_incorrect_password",
	InsufficientFunds:       "insufficient_funds",
	UndefinedError:          "undefined_error",
}

// String はCodeの文字列表現を返す。
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown"
}

// MarshalText はencoding.TextMarshalerを実装する。
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Result は操作結果。
// PayloadはセッションID（int64）または金額（float64）で、該当しない場合はnil。
type Result struct {
	Code    Code
	Payload any
}

// SessionID はPayloadをセッションIDとして返す。
func (r Result) SessionID() (int64, bool) {
	id, ok := r.Payload.(int64)
	return id, ok
}

// Amount はPayloadを金額として返す。
func (r Result) Amount() (float64, bool) {
	amount, ok := r.Payload.(float64)
	return amount, ok
}

// Hardener はパスワードを一方向変換する関数。
// 同じ入力に対して常に同じ値を返す必要がある。
type Hardener func(password string) string
