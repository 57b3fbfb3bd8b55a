package apperr

import "fmt"

// ValidationError は入力項目単位のバリデーションエラー。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValkeyError はValkeyへのコマンド失敗を表す。
// Connection が true の場合は ErrValkeyConnection、それ以外は ErrValkeyCommand として判定される。
type ValkeyError struct {
	Operation  string
	Key        string
	Connection bool
	Cause      error
}

func (e *ValkeyError) Error() string {
	kind := "command"
	if e.Connection {
		kind = "connection"
	}
	msg := fmt.Sprintf("valkey %s failed (%s %s)", kind, e.Operation, e.Key)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValkeyError) Unwrap() error {
	return e.Cause
}

// Is は errors.Is で分類用の番兵エラーと照合できるようにする。
func (e *ValkeyError) Is(target error) bool {
	switch target {
	case ErrValkeyConnection:
		return e.Connection
	case ErrValkeyCommand:
		return !e.Connection
	}
	return false
}

// NewValkeyError はValkeyErrorを生成する。
func NewValkeyError(operation, key string, connection bool, cause error) *ValkeyError {
	return &ValkeyError{
		Operation:  operation,
		Key:        key,
		Connection: connection,
		Cause:      cause,
	}
}
