package ui

import "strings"

// Filter は一覧画面のクライアント側絞り込み条件を表す。
type Filter struct {
	Query  string
	Active bool
}

// SetQuery はフィルタクエリを設定する。空白のみのクエリはフィルタ解除とみなす。
func (f *Filter) SetQuery(query string) {
	f.Query = strings.TrimSpace(query)
	f.Active = f.Query != ""
}

// Clear はフィルタを解除する。
func (f *Filter) Clear() {
	f.Query = ""
	f.Active = false
}

// MatchAny はいずれかの値がクエリを含むかどうかを返す（大文字小文字を区別しない）。
func (f *Filter) MatchAny(values ...string) bool {
	if !f.Active {
		return true
	}
	query := strings.ToLower(f.Query)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// Status はタイトルに表示するフィルタ状態を返す。
func (f *Filter) Status() string {
	if !f.Active {
		return ""
	}
	return "Filter: \"" + f.Query + "\""
}

// FilterItems はフィルタ条件に一致する要素を抽出する。
func FilterItems[T any](items []T, filter *Filter, values func(T) []string) []T {
	if !filter.Active {
		return items
	}
	var result []T
	for _, item := range items {
		if filter.MatchAny(values(item)...) {
			result = append(result, item)
		}
	}
	return result
}
