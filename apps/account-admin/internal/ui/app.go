// Package ui はAccount Adminの画面部品を提供する。
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App はページ切り替えとステータスバーを持つアプリケーション本体。
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	statusBar *StatusBar
	layout    *tview.Flex
}

// NewApp は新しいAppを生成する。
func NewApp() *App {
	app := tview.NewApplication()
	pages := tview.NewPages()
	statusBar := NewStatusBar(app)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(pages, 0, 1, true).
		AddItem(statusBar.view, 1, 0, false)

	return &App{
		app:       app,
		pages:     pages,
		statusBar: statusBar,
		layout:    layout,
	}
}

// Run はイベントループを開始する。Stopが呼ばれるまで戻らない。
func (a *App) Run() error {
	a.statusBar.ShowDefault()
	return a.app.SetRoot(a.layout, true).EnableMouse(false).Run()
}

// Stop はイベントループを停止する。
func (a *App) Stop() {
	a.app.Stop()
}

// StatusBar はステータスバーを返す。
func (a *App) StatusBar() *StatusBar {
	return a.statusBar
}

// Show はページを追加して前面に表示する。同名のページは置き換える。
func (a *App) Show(name string, page tview.Primitive) {
	a.pages.AddAndSwitchToPage(name, page, true)
}

// ShowModal はページを現在の画面に重ねて表示する。
func (a *App) ShowModal(name string, page tview.Primitive) {
	a.pages.AddPage(name, page, true, true)
}

// SwitchTo は既存のページに切り替える。
func (a *App) SwitchTo(name string) {
	a.pages.SwitchToPage(name)
}

// Close はページを削除する。
func (a *App) Close(name string) {
	a.pages.RemovePage(name)
}

// HasPage は指定されたページが存在するかどうかを返す。
func (a *App) HasPage(name string) bool {
	return a.pages.HasPage(name)
}

// SetFocus はフォーカスを設定する。
func (a *App) SetFocus(p tview.Primitive) {
	a.app.SetFocus(p)
}

// QueueUpdateDraw はUIの更新をイベントループに依頼する。
// イベントループ外のgoroutineから画面を更新する場合に使用する。
func (a *App) QueueUpdateDraw(f func()) {
	a.app.QueueUpdateDraw(f)
}

// SetInputCapture はグローバルなキー入力ハンドラを設定する。
func (a *App) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	a.app.SetInputCapture(capture)
}

// Centered はプリミティブを画面中央に固定サイズで配置する。
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
