// Package logging はslog向けのフィールド生成とユーザー名マスキングを提供する。
package logging

import (
	"strings"
	"unicode/utf8"
)

const maskRune = '*'

// Masker はログに出すユーザー名を伏字にする。
// 無効時は入力をそのまま返す。
type Masker struct {
	enabled bool
}

// NewMasker はMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Enabled はマスキングが有効かを返す。
func (m *Masker) Enabled() bool {
	return m != nil && m.enabled
}

// UserName はユーザー名を伏字にする。
//
//	alice.smith       → al********h
//	alice@example.com → al**e@example.com
//	bob               → ***
//
// "@" を含む場合はドメイン部を残し、ローカル部だけを対象にする。
func (m *Masker) UserName(name string) string {
	if !m.Enabled() {
		return name
	}
	local, domain, found := strings.Cut(name, "@")
	if !found {
		return maskMiddle(name)
	}
	return maskMiddle(local) + "@" + domain
}

// maskMiddle は先頭2文字と末尾1文字を残して伏字にする。3文字以下は全体を伏せる。
func maskMiddle(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 3 {
		return strings.Repeat(string(maskRune), n)
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for _, r := range s {
		if i >= 2 && i < n-1 {
			r = maskRune
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}
