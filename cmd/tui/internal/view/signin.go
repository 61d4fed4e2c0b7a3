package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/gestor-maestro/gestor/internal/account"
)

type SignInModel struct {
	accounts *account.Service

	form   *huh.Form
	status string
}

func NewSignInModel(accounts *account.Service) SignInModel {
	return SignInModel{
		accounts: accounts,
		form:     newSignInForm(),
	}
}

func newSignInForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("E-mail").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("informe o e-mail")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Senha").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("informe a senha")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m SignInModel) Title() string     { return "Entrar" }
func (m SignInModel) ShortHelp() string { return "Enter: entrar | Ctrl+C: sair" }

func (m SignInModel) Init() tea.Cmd {
	return m.form.Init()
}

type signInResultMsg struct {
	acc *account.Account
	err error
}

func (m SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInResultMsg); ok {
		if result.err != nil {
			if errors.Is(result.err, account.ErrBadCredentials) {
				m.status = "E-mail ou senha incorretos."
			} else {
				m.status = fmt.Sprintf("Erro: %v", result.err)
			}

			m.form = newSignInForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg {
			return SignedInMsg{AccountID: result.acc.ID, Name: result.acc.Name}
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	email := m.form.GetString("email")
	password := m.form.GetString("password")

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		acc, err := m.accounts.Authenticate(ctx, email, password)

		return signInResultMsg{acc: acc, err: err}
	}
}

func (m SignInModel) View() string {
	content := "Gestor Maestro\n\n" + m.form.View()

	if m.status != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}
