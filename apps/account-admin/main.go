// Account Admin - Account Serverのアカウント・セッション管理コンソール
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/audit"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/config"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/store"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui/account"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui/monitoring"
	"github.com/oyaguma3/account-session-gateway/pkg/valkey"
)

// ページ名
const (
	pageMainMenu    = "main-menu"
	pageStartup     = "startup-error"
	pageHelp        = "help"
	pageAccountList = "account-list"
	pageAccountForm = "account-form"
	pageSessionList = "session-list"
	pageDashboard   = "dashboard"
)

// Application はアプリケーション全体を管理する。
type Application struct {
	app         *ui.App
	cfg         *config.Config
	auditLogger *audit.Logger

	store       *store.Store
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// TUIが標準出力を使用するため監査ログはファイルへ出力する
	auditFile, err := os.OpenFile(cfg.AuditLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		log.Fatalf("Failed to open audit log: %v", err)
	}
	defer auditFile.Close()

	a := &Application{
		app:         ui.NewApp(),
		cfg:         cfg,
		auditLogger: audit.NewLogger(auditFile, cfg.AdminUser),
	}
	defer a.cleanup()

	if err := a.connectValkey(); err != nil {
		a.showStartupError(err)
	} else {
		a.showMainMenu()
	}
	a.setupGlobalKeyBindings()

	if err := a.app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func (a *Application) connectValkey() error {
	client, err := valkey.NewClient(a.cfg.ValkeyOptions())
	if err != nil {
		return err
	}

	a.store = store.New(client, config.BcryptCost)
	return nil
}

func (a *Application) showStartupError(err error) {
	a.app.Show(pageStartup, ui.NewStartupErrorScreen(a.cfg.ValkeyAddr(), err.Error(),
		func() {
			if err := a.connectValkey(); err != nil {
				a.app.StatusBar().ShowError("Connection failed: " + err.Error())
				return
			}
			a.app.Close(pageStartup)
			a.showMainMenu()
		},
		a.app.Stop,
	))
}

func (a *Application) showMainMenu() {
	menu := ui.NewMenu("Account Admin - Main Menu", []ui.MenuItem{
		{Label: "Accounts", Description: "List, create and delete accounts, adjust balances", Key: '1', Action: a.showAccountList},
		{Label: "Sessions", Description: "View and terminate active sessions", Key: '2', Action: a.showSessionList},
		{Label: "Dashboard", Description: "Account and session counts", Key: '3', Action: a.showDashboard},
		{Label: "Exit", Description: "Exit the application", Key: 'q', Action: a.app.Stop},
	}, a.app.Stop)

	a.app.Show(pageMainMenu, menu)
}

func (a *Application) setupGlobalKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlQ:
			a.app.Stop()
			return nil
		case tcell.KeyF1:
			a.app.ShowModal(pageHelp, ui.NewHelpModal(func() {
				a.app.Close(pageHelp)
			}))
			return nil
		}
		return event
	})
}

func (a *Application) showAccountList() {
	screen := account.NewListScreen(a.app, a.store.Accounts, a.auditLogger)
	screen.SetOnCreate(a.showAccountForm)
	screen.SetOnBack(func() {
		a.app.Close(pageAccountList)
		a.app.SwitchTo(pageMainMenu)
	})

	a.app.Show(pageAccountList, screen.Table())
	a.load(screen.Load)
}

func (a *Application) showAccountForm() {
	screen := account.NewFormScreen(a.app, a.store.Accounts, a.auditLogger)
	screen.SetOnSave(func() {
		a.app.Close(pageAccountForm)
		a.showAccountList()
	})
	screen.SetOnCancel(func() {
		a.app.Close(pageAccountForm)
		a.app.SwitchTo(pageAccountList)
	})

	a.app.ShowModal(pageAccountForm, ui.Centered(screen.Form(), 60, 11))
	a.app.SetFocus(screen.Form())
}

func (a *Application) showSessionList() {
	screen := monitoring.NewSessionListScreen(a.app, a.store.Sessions, a.auditLogger)
	screen.SetOnBack(func() {
		a.app.Close(pageSessionList)
		a.app.SwitchTo(pageMainMenu)
	})

	a.app.Show(pageSessionList, screen.Table())
	a.load(screen.Load)
}

func (a *Application) showDashboard() {
	screen := monitoring.NewDashboardScreen(a.store.Accounts, a.store.Sessions)
	screen.SetOnBack(func() {
		a.app.Close(pageDashboard)
		a.app.SwitchTo(pageMainMenu)
	})

	a.app.Show(pageDashboard, screen.View())
	a.load(screen.Load)
}

// load は画面表示後の読み込みをイベントループに依頼する。
func (a *Application) load(fn func(ctx context.Context) error) {
	go a.app.QueueUpdateDraw(func() {
		ctx := context.Background()
		if err := a.store.Ping(ctx); err != nil {
			a.app.StatusBar().ShowError(fmt.Sprintf("Valkey unreachable (%s): %v", a.cfg.ValkeyAddr(), err))
			return
		}
		if err := fn(ctx); err != nil {
			a.app.StatusBar().ShowError(fmt.Sprintf("Failed to load: %v", err))
		}
	})
}

func (a *Application) cleanup() {
	if a.store != nil {
		_ = a.store.Close()
	}
}
