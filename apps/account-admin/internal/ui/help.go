package ui

import (
	"strings"

	"github.com/rivo/tview"
)

// KeyBinding はヘルプに表示するキー操作を表す。
type KeyBinding struct {
	Key         string
	Description string
}

// HelpSection はヘルプのセクションを表す。
type HelpSection struct {
	Title    string
	Bindings []KeyBinding
}

// HelpSections は全画面共通のヘルプ内容を返す。
func HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Lists",
			Bindings: []KeyBinding{
				{"Enter", "Show details"},
				{"n", "Create account"},
				{"b", "Set balance"},
				{"d", "Delete account / terminate session"},
				{"r", "Refresh"},
				{"/", "Filter"},
				{"PgDn", "Next page"},
				{"PgUp", "Previous page"},
			},
		},
		{
			Title: "Global",
			Bindings: []KeyBinding{
				{"F1", "Show this help"},
				{"q / Esc", "Back"},
				{"Ctrl+Q", "Exit application"},
			},
		},
	}
}

// HelpText はヘルプセクションを表示用テキストに整形する。
func HelpText(sections []HelpSection) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[::b]" + section.Title + "[::-]\n")
		for _, binding := range section.Bindings {
			b.WriteString("  " + binding.Key + "  " + binding.Description + "\n")
		}
	}
	return b.String()
}

// NewHelpModal はヘルプモーダルを生成する。
func NewHelpModal(onClose func()) *tview.Modal {
	return NewInfoDialog("Help", HelpText(HelpSections()), onClose)
}
