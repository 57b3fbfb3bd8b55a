package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	buttonRetry = "Retry"
	buttonExit  = "Exit"
)

// NewStartupErrorScreen はValkey接続失敗時の画面を生成する。
func NewStartupErrorScreen(addr, errorMessage string, onRetry, onExit func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(startupErrorText(addr, errorMessage)).
		AddButtons([]string{buttonRetry, buttonExit}).
		SetDoneFunc(startupDone(onRetry, onExit))

	modal.SetTitle(" Connection Error ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)
	modal.SetBackgroundColor(tcell.ColorBlack)
	return modal
}

func startupErrorText(addr, errorMessage string) string {
	return "Failed to connect to Valkey at " + addr + ":\n\n" + errorMessage +
		"\n\nPlease check:\n- Valkey is running\n- REDIS_HOST / REDIS_PORT / REDIS_PASS are set correctly"
}

// startupDone はRetry以外(Escによる閉じも含む)を終了として扱う。
func startupDone(onRetry, onExit func()) func(int, string) {
	return func(_ int, label string) {
		next := onExit
		if label == buttonRetry {
			next = onRetry
		}
		if next != nil {
			next()
		}
	}
}
