// Package account はアカウント管理画面を提供する。
package account

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/audit"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/format"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/store"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/validation"
)

// 名前列の最大表示文字数
const nameColumnWidth = 32

// ダイアログのページ名
const (
	pageFilter  = "account-filter"
	pageBalance = "account-balance"
	pageDelete  = "account-delete"
	pageDetail  = "account-detail"
)

// ListScreen はアカウント一覧画面を表す。
type ListScreen struct {
	table       *tview.Table
	app         *ui.App
	store       *store.AccountStore
	auditLogger *audit.Logger
	accounts    []*store.Account
	filter      ui.Filter
	pagination  *ui.Pagination
	onCreate    func()
	onBack      func()
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, accountStore *store.AccountStore, auditLogger *audit.Logger) *ListScreen {
	table := tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetTitle(" Accounts ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	s := &ListScreen{
		table:       table,
		app:         app,
		store:       accountStore,
		auditLogger: auditLogger,
		pagination:  ui.NewPagination(ui.DefaultPageSize),
	}
	s.setupKeyBindings()
	return s
}

// SetOnCreate は新規作成時のコールバックを設定する。
func (s *ListScreen) SetOnCreate(handler func()) {
	s.onCreate = handler
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ListScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// Table は内部のtview.Tableを返す。
func (s *ListScreen) Table() *tview.Table {
	return s.table
}

// Load はアカウント一覧を読み込んで表示する。
func (s *ListScreen) Load(ctx context.Context) error {
	accounts, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	s.accounts = accounts
	s.render()
	return nil
}

// SetFilter は名前による絞り込みを設定する。
func (s *ListScreen) SetFilter(query string) {
	s.filter.SetQuery(query)
	s.pagination.FirstPage()
	s.render()
}

// SelectedName は選択中のアカウント名を返す。未選択の場合は空文字を返す。
func (s *ListScreen) SelectedName() string {
	row, _ := s.table.GetSelection()
	items := ui.PageItems(s.filtered(), s.pagination)
	if row < 1 || row > len(items) {
		return ""
	}
	return items[row-1].Name
}

// SetBalance は残高入力を検証して上書きし、監査ログを出力する。
func (s *ListScreen) SetBalance(ctx context.Context, name, input string) error {
	balance, err := validation.ParseBalance(input)
	if err != nil {
		return err
	}
	previous, err := s.store.SetBalance(ctx, name, balance)
	if err != nil {
		return err
	}
	s.auditLogger.LogBalanceUpdate(store.AccountKey(name), name,
		fmt.Sprintf("balance=%s->%s", format.Balance(previous), format.Balance(balance)))
	return s.Load(ctx)
}

// Delete はアカウントを削除し、監査ログを出力する。
func (s *ListScreen) Delete(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	s.auditLogger.LogDelete(store.AccountKey(name), name)
	return s.Load(ctx)
}

func (s *ListScreen) filtered() []*store.Account {
	return ui.FilterItems(s.accounts, &s.filter, func(a *store.Account) []string {
		return []string{a.Name}
	})
}

func (s *ListScreen) render() {
	s.table.Clear()

	for col, header := range []string{"Name", "Balance", "Session"} {
		s.table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}

	items := ui.PageItems(s.filtered(), s.pagination)
	for i, a := range items {
		row := i + 1
		sessionColor := tcell.ColorGray
		if a.LoggedIn() {
			sessionColor = tcell.ColorGreen
		}
		s.table.SetCell(row, 0, tview.NewTableCell(format.Truncate(a.Name, nameColumnWidth)).
			SetTextColor(tcell.ColorWhite).
			SetExpansion(1))
		s.table.SetCell(row, 1, tview.NewTableCell(format.Balance(a.Balance)).
			SetTextColor(tcell.ColorTeal).
			SetAlign(tview.AlignRight).
			SetExpansion(1))
		s.table.SetCell(row, 2, tview.NewTableCell(format.SessionID(a.SessionID)).
			SetTextColor(sessionColor).
			SetExpansion(1))
	}

	title := " Accounts "
	if s.filter.Active {
		title += "[yellow](" + s.filter.Status() + ")[-] "
	}
	title += "[gray]" + s.pagination.Info() + "[-] "
	s.table.SetTitle(title)

	if len(items) > 0 {
		s.table.Select(1, 0)
	}
}

func (s *ListScreen) setupKeyBindings() {
	s.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			if s.filter.Active {
				s.SetFilter("")
				return nil
			}
			s.back()
			return nil
		case tcell.KeyEnter:
			s.showDetail()
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
		case 'n':
			if s.onCreate != nil {
				s.onCreate()
			}
		case 'b':
			s.showBalanceDialog()
		case 'd':
			s.showDeleteConfirm()
		case 'r':
			s.refresh()
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

func (s *ListScreen) back() {
	if s.onBack != nil {
		s.onBack()
	}
}

func (s *ListScreen) refresh() {
	if err := s.Load(context.Background()); err != nil {
		s.app.StatusBar().ShowError("Failed to refresh: " + err.Error())
		return
	}
	s.app.StatusBar().ShowSuccess("Refreshed")
}

func (s *ListScreen) closeDialog(page string) {
	s.app.Close(page)
	s.app.SetFocus(s.table)
}

func (s *ListScreen) showDetail() {
	name := s.SelectedName()
	if name == "" {
		return
	}
	a, err := s.store.Get(context.Background(), name)
	if err != nil {
		s.app.StatusBar().ShowError("Failed to load account: " + err.Error())
		return
	}
	text := fmt.Sprintf("Name: %s\nBalance: %s\nSession: %s", a.Name, format.Balance(a.Balance), format.SessionID(a.SessionID))
	s.app.ShowModal(pageDetail, ui.NewInfoDialog("Account", text, func() {
		s.closeDialog(pageDetail)
	}))
}

func (s *ListScreen) showBalanceDialog() {
	name := s.SelectedName()
	if name == "" {
		return
	}
	dialog := ui.NewInputDialog("Set Balance: "+name, "Balance:", "",
		func(value string) {
			if err := s.SetBalance(context.Background(), name, value); err != nil {
				s.app.StatusBar().ShowError("Failed to set balance: " + err.Error())
				return
			}
			s.closeDialog(pageBalance)
			s.app.StatusBar().ShowSuccess("Balance updated: " + name)
		},
		func() { s.closeDialog(pageBalance) },
	)
	s.app.ShowModal(pageBalance, ui.Centered(dialog, 50, 7))
	s.app.SetFocus(dialog)
}

func (s *ListScreen) showDeleteConfirm() {
	name := s.SelectedName()
	if name == "" {
		return
	}
	s.app.ShowModal(pageDelete, ui.NewConfirmDialog("Confirm Delete",
		"Delete this account and its active session?\n\n"+name,
		func() {
			s.closeDialog(pageDelete)
			if err := s.Delete(context.Background(), name); err != nil {
				s.app.StatusBar().ShowError("Failed to delete: " + err.Error())
				return
			}
			s.app.StatusBar().ShowSuccess("Account deleted: " + name)
		},
		func() { s.closeDialog(pageDelete) },
	))
}

func (s *ListScreen) showFilterDialog() {
	dialog := ui.NewInputDialog("Filter Accounts", "Name contains:", s.filter.Query,
		func(value string) {
			s.SetFilter(value)
			s.closeDialog(pageFilter)
		},
		func() { s.closeDialog(pageFilter) },
	)
	s.app.ShowModal(pageFilter, ui.Centered(dialog, 50, 7))
	s.app.SetFocus(dialog)
}
