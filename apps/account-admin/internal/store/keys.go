// Package store はAccount Serverと共有するValkeyデータへのアクセス層を提供する。
package store

import "strconv"

// キープレフィックス定義
// Account Serverのキー構成と一致させること。
const (
	// PrefixAccount はアカウントHashキーのプレフィックス
	PrefixAccount = "acct:"
	// PrefixSession はセッションID → ユーザー名キーのプレフィックス
	PrefixSession = "sess:"
	// PrefixUserIndex はユーザー名 → セッションIDキーのプレフィックス
	PrefixUserIndex = "idx:user:"
)

// アカウントHashのフィールド名
const (
	FieldPasswordHash = "password_hash"
	FieldBalance      = "balance"
)

// scanCount はSCAN 1回あたりのヒント件数
const scanCount = 100

// AccountKey はアカウントのValkeyキーを生成する。
func AccountKey(name string) string {
	return PrefixAccount + name
}

// SessionKey はセッションのValkeyキーを生成する。
func SessionKey(sessionID int64) string {
	return PrefixSession + strconv.FormatInt(sessionID, 10)
}

// UserIndexKey はユーザーインデックスのValkeyキーを生成する。
func UserIndexKey(name string) string {
	return PrefixUserIndex + name
}

func formatBalance(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseBalance(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
