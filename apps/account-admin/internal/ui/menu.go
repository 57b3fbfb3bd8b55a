package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuItem はメニュー項目を表す。
type MenuItem struct {
	Label       string
	Description string
	Key         rune
	Action      func()
}

// NewMenu は項目リストからメニューを生成する。
// Escまたは 'q' でonBackを呼び出す。
func NewMenu(title string, items []MenuItem, onBack func()) *tview.List {
	list := tview.NewList().ShowSecondaryText(true)
	for _, item := range items {
		list.AddItem(item.Label, item.Description, item.Key, item.Action)
	}

	list.SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == 'q' {
			if onBack != nil {
				onBack()
			}
			return nil
		}
		return event
	})
	return list
}
