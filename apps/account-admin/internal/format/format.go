// Package format は画面表示用の文字列整形を提供する。
package format

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// TTL は残り有効期間を "1h 2m 3s" 形式にフォーマットする。
// 有効期限なしや失効済みの場合は "-" を返す。
func TTL(d time.Duration) string {
	if d <= 0 {
		return "-"
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// Balance は残高を小数点以下2桁で表示する。
func Balance(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// SessionID はセッションIDを表示用文字列にする。
// 0はログインしていないことを表す。
func SessionID(id int64) string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}

// Truncate は文字列を指定した文字数に切り詰める。
// 切り詰めた場合は末尾に "..." を付加する。
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
