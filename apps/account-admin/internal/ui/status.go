package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StatusType はステータスメッセージの種類を表す。
type StatusType int

const (
	StatusInfo StatusType = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// statusDuration はメッセージを表示し続ける時間
const statusDuration = 5 * time.Second

// DefaultStatusText はメッセージがない時に表示するキー操作ガイド
const DefaultStatusText = " F1:Help | q/Esc:Back | Ctrl+Q:Exit"

// StatusBar は画面下部の1行メッセージを管理する。
type StatusBar struct {
	view       *tview.TextView
	app        *tview.Application
	mu         sync.Mutex
	clearTimer *time.Timer
}

// NewStatusBar は新しいStatusBarを生成する。
func NewStatusBar(app *tview.Application) *StatusBar {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	view.SetBackgroundColor(tcell.ColorDarkBlue)
	view.SetTextColor(tcell.ColorWhite)

	return &StatusBar{view: view, app: app}
}

// ShowDefault はキー操作ガイドを表示する。
func (s *StatusBar) ShowDefault() {
	s.view.SetText(DefaultStatusText)
}

// Text は現在表示中のテキストを返す。
func (s *StatusBar) Text() string {
	return s.view.GetText(false)
}

// Show はメッセージを表示し、一定時間後にガイド表示へ戻す。
func (s *StatusBar) Show(statusType StatusType, message string) {
	s.view.SetText(decorate(statusType, message))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
	s.clearTimer = time.AfterFunc(statusDuration, func() {
		s.app.QueueUpdateDraw(s.ShowDefault)
	})
}

// ShowInfo は情報メッセージを表示する。
func (s *StatusBar) ShowInfo(message string) {
	s.Show(StatusInfo, message)
}

// ShowSuccess は成功メッセージを表示する。
func (s *StatusBar) ShowSuccess(message string) {
	s.Show(StatusSuccess, message)
}

// ShowError はエラーメッセージを表示する。
func (s *StatusBar) ShowError(message string) {
	s.Show(StatusError, message)
}

func decorate(statusType StatusType, message string) string {
	switch statusType {
	case StatusSuccess:
		return "[green::b] ✓ " + message + " [-::-]"
	case StatusWarning:
		return "[yellow::b] ⚠ " + message + " [-::-]"
	case StatusError:
		return "[red::b] ✗ " + message + " [-::-]"
	default:
		return "[teal] ℹ " + message + " [-]"
	}
}
