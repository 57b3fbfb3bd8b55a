// Package monitoring はセッション監視画面を提供する。
package monitoring

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/audit"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/format"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/store"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui"
)

const (
	pageFilter    = "session-filter"
	pageTerminate = "session-terminate"
)

// SessionListScreen はセッション一覧画面を表す。
type SessionListScreen struct {
	table        *tview.Table
	app          *ui.App
	sessionStore *store.SessionStore
	auditLogger  *audit.Logger
	sessions     []*store.Session
	filter       ui.Filter
	pagination   *ui.Pagination
	onBack       func()
}

// NewSessionListScreen は新しいSessionListScreenを生成する。
func NewSessionListScreen(app *ui.App, sessionStore *store.SessionStore, auditLogger *audit.Logger) *SessionListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Sessions ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	s := &SessionListScreen{
		table:        table,
		app:          app,
		sessionStore: sessionStore,
		auditLogger:  auditLogger,
		pagination:   ui.NewPagination(ui.DefaultPageSize),
	}
	s.setupKeyBindings()
	return s
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *SessionListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// Table は内部のtview.Tableを返す。
func (s *SessionListScreen) Table() *tview.Table {
	return s.table
}

// Load はセッション一覧を読み込んで表示する。
func (s *SessionListScreen) Load(ctx context.Context) error {
	sessions, err := s.sessionStore.List(ctx)
	if err != nil {
		return err
	}
	s.sessions = sessions
	s.render()
	return nil
}

// SetFilter はユーザー名またはセッションIDによる絞り込みを設定する。
func (s *SessionListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.pagination.FirstPage()
	s.render()
}

// SelectedID は選択中のセッションIDを返す。未選択の場合は0を返す。
func (s *SessionListScreen) SelectedID() int64 {
	row, _ := s.table.GetSelection()
	items := ui.PageItems(s.filtered(), s.pagination)
	if row < 1 || row > len(items) {
		return 0
	}
	return items[row-1].ID
}

// Terminate はセッションを強制終了し、監査ログを出力する。
func (s *SessionListScreen) Terminate(ctx context.Context, sessionID int64) error {
	name, err := s.sessionStore.Terminate(ctx, sessionID)
	if err != nil {
		return err
	}
	s.auditLogger.LogTerminate(store.SessionKey(sessionID), name)
	return s.Load(ctx)
}

func (s *SessionListScreen) filtered() []*store.Session {
	return ui.FilterItems(s.sessions, &s.filter, func(sess *store.Session) []string {
		return []string{sess.Name, strconv.FormatInt(sess.ID, 10)}
	})
}

func (s *SessionListScreen) render() {
	s.table.Clear()

	for col, header := range []string{"Session ID", "Name", "Expires In"} {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}

	items := ui.PageItems(s.filtered(), s.pagination)
	for i, sess := range items {
		row := i + 1
		s.table.SetCell(row, 0, tview.NewTableCell(strconv.FormatInt(sess.ID, 10)).
			SetTextColor(tcell.ColorWhite).
			SetExpansion(1))
		s.table.SetCell(row, 1, tview.NewTableCell(format.Truncate(sess.Name, 32)).
			SetTextColor(tcell.ColorWhite).
			SetExpansion(1))
		s.table.SetCell(row, 2, tview.NewTableCell(format.TTL(sess.TTL)).
			SetTextColor(tcell.ColorTeal).
			SetExpansion(1))
	}

	title := " Sessions "
	if s.filter.Active {
		title += "[yellow](" + s.filter.Status() + ")[-] "
	}
	title += "[gray]" + s.pagination.Info() + "[-] "
	s.table.SetTitle(title)

	if len(items) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *SessionListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active {
				s.SetFilter("")
				return nil
			}
			s.back()
			return nil
		case tcell.KeyPgDn:
			if s.pagination.NextPage() {
				s.render()
			}
			return nil
		case tcell.KeyPgUp:
			if s.pagination.PrevPage() {
				s.render()
			}
			return nil
		}

		switch event.Rune() {
		case 'd':
			s.showTerminateConfirm()
		case 'r':
			if err := s.Load(context.Background()); err != nil {
				s.app.StatusBar().ShowError("Failed to refresh: " + err.Error())
			} else {
				s.app.StatusBar().ShowSuccess("Refreshed")
			}
		case '/':
			s.showFilterDialog()
		case 'q':
			s.back()
		default:
			return event
		}
		return nil
	})
}

func (s *SessionListScreen) back() {
	if s.onBack != nil {
		s.onBack()
	}
}

func (s *SessionListScreen) closeDialog(page string) {
	s.app.Close(page)
	s.app.SetFocus(s.table)
}

func (s *SessionListScreen) showTerminateConfirm() {
	id := s.SelectedID()
	if id == 0 {
		return
	}
	label := strconv.FormatInt(id, 10)
	s.app.ShowModal(pageTerminate, ui.NewConfirmDialog("Confirm Terminate",
		"Terminate this session?\n\n"+label,
		func() {
			s.closeDialog(pageTerminate)
			if err := s.Terminate(context.Background(), id); err != nil {
				s.app.StatusBar().ShowError("Failed to terminate: " + err.Error())
				return
			}
			s.app.StatusBar().ShowSuccess("Session terminated: " + label)
		},
		func() { s.closeDialog(pageTerminate) },
	))
}

func (s *SessionListScreen) showFilterDialog() {
	dialog := ui.NewInputDialog("Filter Sessions", "Name/ID contains:", s.filter.Query,
		func(value string) {
			s.SetFilter(value)
			s.closeDialog(pageFilter)
		},
		func() { s.closeDialog(pageFilter) },
	)
	s.app.ShowModal(pageFilter, ui.Centered(dialog, 50, 7))
	s.app.SetFocus(dialog)
}
