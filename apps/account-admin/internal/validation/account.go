// Package validation は管理画面の入力値検証を提供する。
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// アカウント名の制約
const (
	MaxNameLength     = 64
	MinPasswordLength = 4
)

// NamePattern はアカウント名に使用できる文字を表す。
// Valkeyキーの一部になるため空白と区切り文字 ':' は許可しない。
var NamePattern = regexp.MustCompile(`^[A-Za-z0-9._@-]+$`)

// AccountValidationError はアカウントのバリデーションエラーを表す。
type AccountValidationError struct {
	Field   string
	Message string
}

func (e *AccountValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName はアカウント名のバリデーションを行う。
func ValidateName(name string) error {
	if name == "" {
		return &AccountValidationError{Field: "Name", Message: "required"}
	}
	if len(name) > MaxNameLength {
		return &AccountValidationError{Field: "Name", Message: fmt.Sprintf("must be at most %d characters", MaxNameLength)}
	}
	if !NamePattern.MatchString(name) {
		return &AccountValidationError{Field: "Name", Message: "must contain only letters, digits, '.', '_', '@' or '-'"}
	}
	return nil
}

// ValidatePassword はパスワードのバリデーションを行う。
func ValidatePassword(password string) error {
	if password == "" {
		return &AccountValidationError{Field: "Password", Message: "required"}
	}
	if len([]rune(password)) < MinPasswordLength {
		return &AccountValidationError{Field: "Password", Message: fmt.Sprintf("must be at least %d characters", MinPasswordLength)}
	}
	return nil
}

// ParseBalance は残高入力を数値に変換する。
// 空文字は0として扱う。
func ParseBalance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &AccountValidationError{Field: "Balance", Message: "must be a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &AccountValidationError{Field: "Balance", Message: "must be a finite number"}
	}
	if v < 0 {
		return 0, &AccountValidationError{Field: "Balance", Message: "must not be negative"}
	}
	return v, nil
}

// AccountInput はアカウント登録フォームの入力データを表す。
type AccountInput struct {
	Name     string
	Password string
	Balance  string
}

// NormalizeAccountInput は入力データを正規化する。
// パスワードは入力どおりに扱う。
func NormalizeAccountInput(input *AccountInput) *AccountInput {
	return &AccountInput{
		Name:     strings.TrimSpace(input.Name),
		Password: input.Password,
		Balance:  strings.TrimSpace(input.Balance),
	}
}

// ValidateAccount はアカウント入力全体のバリデーションを行う。
func ValidateAccount(input *AccountInput) []error {
	var errs []error
	if err := ValidateName(input.Name); err != nil {
		errs = append(errs, err)
	}
	if err := ValidatePassword(input.Password); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseBalance(input.Balance); err != nil {
		errs = append(errs, err)
	}
	return errs
}
