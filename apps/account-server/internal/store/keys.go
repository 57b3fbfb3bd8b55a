package store

import "strconv"

// Valkeyキープレフィックス
const (
	KeyPrefixAccount   = "acct:"       // アカウント（Hash）
	KeyPrefixSession   = "sess:"       // セッションID → ユーザー名
	KeyPrefixUserIndex = "idx:user:"   // ユーザー名 → セッションID
	KeySessionSeq      = "seq:session" // セッションID採番
)

// pendingSessionID はログイン処理中にユーザーインデックスを予約する値。採番は1から。
const pendingSessionID = "0"

// アカウントHashのフィールド名
const (
	FieldPasswordHash = "password_hash"
	FieldBalance      = "balance"
)

func accountKey(name string) string {
	return KeyPrefixAccount + name
}

func sessionKey(sessionID int64) string {
	return KeyPrefixSession + strconv.FormatInt(sessionID, 10)
}

func userIndexKey(name string) string {
	return KeyPrefixUserIndex + name
}

// formatBalance は残高をHashに格納する文字列へ変換する。
func formatBalance(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseBalance はHashの残高文字列を数値へ変換する。
func parseBalance(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
