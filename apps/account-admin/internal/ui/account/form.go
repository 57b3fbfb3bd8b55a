package account

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/audit"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/store"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/ui"
	"github.com/oyaguma3/account-session-gateway/apps/account-admin/internal/validation"
)

// フォーム項目のラベル
const (
	labelName     = "Name"
	labelPassword = "Password"
	labelBalance  = "Initial balance"
)

// FormScreen はアカウント登録画面を表す。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	store       *store.AccountStore
	auditLogger *audit.Logger
	onSave      func()
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
func NewFormScreen(app *ui.App, accountStore *store.AccountStore, auditLogger *audit.Logger) *FormScreen {
	s := &FormScreen{
		form:        tview.NewForm(),
		app:         app,
		store:       accountStore,
		auditLogger: auditLogger,
	}

	s.form.AddInputField(labelName, "", 32, nil, nil)
	s.form.AddPasswordField(labelPassword, "", 32, '*', nil)
	s.form.AddInputField(labelBalance, "0", 16, nil, nil)
	s.form.AddButton("Save", s.handleSave)
	s.form.AddButton("Cancel", s.handleCancel)

	s.form.SetTitle(" Create Account ").
		SetBorder(true).
		SetBorderColor(tcell.ColorBlue)
	s.form.SetCancelFunc(s.handleCancel)
	return s
}

// SetOnSave は保存完了時のコールバックを設定する。
func (s *FormScreen) SetOnSave(handler func()) {
	s.onSave = handler
}

// SetOnCancel はキャンセル時のコールバックを設定する。
func (s *FormScreen) SetOnCancel(handler func()) {
	s.onCancel = handler
}

// Form は内部のtview.Formを返す。
func (s *FormScreen) Form() *tview.Form {
	return s.form
}

// Input はフォームの入力値を返す。
func (s *FormScreen) Input() *validation.AccountInput {
	return &validation.AccountInput{
		Name:     s.text(labelName),
		Password: s.text(labelPassword),
		Balance:  s.text(labelBalance),
	}
}

// Save は入力値を検証してアカウントを登録し、監査ログを出力する。
func (s *FormScreen) Save(ctx context.Context, input *validation.AccountInput) error {
	input = validation.NormalizeAccountInput(input)
	if errs := validation.ValidateAccount(input); len(errs) > 0 {
		return errs[0]
	}
	balance, _ := validation.ParseBalance(input.Balance)

	if err := s.store.Create(ctx, input.Name, input.Password, balance); err != nil {
		return err
	}
	s.auditLogger.LogCreate(store.AccountKey(input.Name), input.Name)
	return nil
}

func (s *FormScreen) text(label string) string {
	return s.form.GetFormItemByLabel(label).(*tview.InputField).GetText()
}

func (s *FormScreen) handleSave() {
	input := s.Input()
	if err := s.Save(context.Background(), input); err != nil {
		s.app.StatusBar().ShowError("Failed to create: " + err.Error())
		return
	}
	s.app.StatusBar().ShowSuccess("Account created: " + validation.NormalizeAccountInput(input).Name)
	if s.onSave != nil {
		s.onSave()
	}
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
