package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewConfirmDialog はYes/Noの確認ダイアログを生成する。
func NewConfirmDialog(title, message string, onConfirm, onCancel func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, buttonLabel string) {
			if buttonLabel == "Yes" {
				if onConfirm != nil {
					onConfirm()
				}
				return
			}
			if onCancel != nil {
				onCancel()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorYellow)
	return modal
}

// NewInfoDialog はOKボタンのみの情報ダイアログを生成する。
func NewInfoDialog(title, message string, onClose func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			if onClose != nil {
				onClose()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(tcell.ColorTeal)
	return modal
}

// NewInputDialog は1項目の入力ダイアログを生成する。
func NewInputDialog(title, label, defaultValue string, onSubmit func(value string), onCancel func()) *tview.Form {
	form := tview.NewForm()
	input := tview.NewInputField().
		SetLabel(label).
		SetText(defaultValue).
		SetFieldWidth(20)
	form.AddFormItem(input)

	form.AddButton("OK", func() {
		if onSubmit != nil {
			onSubmit(input.GetText())
		}
	})
	form.AddButton("Cancel", func() {
		if onCancel != nil {
			onCancel()
		}
	})
	form.SetCancelFunc(func() {
		if onCancel != nil {
			onCancel()
		}
	})

	form.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(tcell.ColorWhite)
	return form
}
