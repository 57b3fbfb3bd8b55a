// Package credential はパスワードのハードニングを提供する。
package credential

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"

	"github.com/oyaguma3/account-session-gateway/apps/session-gateway/internal/session"
)

// Argon2idパラメータ
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// NewHardener はArgon2idによるHardenerを生成する。
// ソルトはpepperから導出するため、同じpepperでは常に同じ値を返す。
func NewHardener(pepper string) session.Hardener {
	sum := sha256.Sum256([]byte(pepper))
	salt := sum[:saltLen]

	return func(password string) string {
		key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
		return hex.EncodeToString(key)
	}
}

// Identity は入力をそのまま返すHardener。テスト用。
func Identity(password string) string {
	return password
}
