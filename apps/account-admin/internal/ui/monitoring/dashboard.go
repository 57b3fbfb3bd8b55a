package monitoring

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/format"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/store"
)

// Summary はアカウントとセッションの集計値を表す。
type Summary struct {
	Accounts      int
	LoggedIn      int
	Sessions      int
	StaleSessions int // インデックスから参照されていないセッション
	TotalBalance  float64
}

// Summarize はアカウントとセッションの一覧から集計値を計算する。
func Summarize(accounts []*store.Account, sessions []*store.Session) Summary {
	sum := Summary{Accounts: len(accounts), Sessions: len(sessions)}
	current := make(map[int64]struct{}, len(accounts))
	for _, a := range accounts {
		sum.TotalBalance += a.Balance
		if a.LoggedIn() {
			sum.LoggedIn++
			current[a.SessionID] = struct{}{}
		}
	}
	for _, sess := range sessions {
		if _, ok := current[sess.ID]; !ok {
			sum.StaleSessions++
		}
	}
	return sum
}

// DashboardScreen は集計値を表示する画面を表す。
type DashboardScreen struct {
	view         *tview.TextView
	accountStore *store.AccountStore
	sessionStore *store.SessionStore
	onBack       func()
}

// NewDashboardScreen は新しいDashboardScreenを生成する。
func NewDashboardScreen(accountStore *store.AccountStore, sessionStore *store.SessionStore) *DashboardScreen {
	view := tview.NewTextView().SetDynamicColors(true)
	view.SetTitle(" Dashboard ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)

	s := &DashboardScreen{
		view:         view,
		accountStore: accountStore,
		sessionStore: sessionStore,
	}
	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == 'q' {
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}
		if event.Rune() == 'r' {
			_ = s.Load(context.Background())
			return nil
		}
		return event
	})
	return s
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *DashboardScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// View は内部のtview.TextViewを返す。
func (s *DashboardScreen) View() *tview.TextView {
	return s.view
}

// Load は最新の集計値を読み込んで表示する。
func (s *DashboardScreen) Load(ctx context.Context) error {
	accounts, err := s.accountStore.List(ctx)
	if err != nil {
		return err
	}
	sessions, err := s.sessionStore.List(ctx)
	if err != nil {
		return err
	}
	s.view.SetText(Render(Summarize(accounts, sessions)))
	return nil
}

// Render は集計値を表示用テキストに整形する。
func Render(sum Summary) string {
	text := fmt.Sprintf(
		"\n  [yellow]Accounts[-]        %d\n"+
			"  [yellow]Logged in[-]       %d\n"+
			"  [yellow]Sessions[-]        %d\n"+
			"  [yellow]Total balance[-]   %s\n",
		sum.Accounts, sum.LoggedIn, sum.Sessions, format.Balance(sum.TotalBalance))
	if sum.StaleSessions > 0 {
		text += fmt.Sprintf("\n  [red]Unindexed sessions: %d[-]\n", sum.StaleSessions)
	}
	return text
}
