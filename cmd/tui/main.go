package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gestor-maestro/gestor/cmd/tui/internal/view"
	"github.com/gestor-maestro/gestor/internal/account"
	accountStore "github.com/gestor-maestro/gestor/internal/account/store"
	"github.com/gestor-maestro/gestor/internal/advisor"
	"github.com/gestor-maestro/gestor/internal/config"
	"github.com/gestor-maestro/gestor/internal/database"
	"github.com/gestor-maestro/gestor/internal/fixedcost"
	fixedCostStore "github.com/gestor-maestro/gestor/internal/fixedcost/store"
	"github.com/gestor-maestro/gestor/internal/ledger"
	ledgerStore "github.com/gestor-maestro/gestor/internal/ledger/store"
	"github.com/gestor-maestro/gestor/internal/obligation"
	obligationStore "github.com/gestor-maestro/gestor/internal/obligation/store"
	"github.com/gestor-maestro/gestor/internal/pricing"
)

type model struct {
	accountService    *account.Service
	obligationService *obligation.Service
	ledgerService     *ledger.Service
	fixedCostService  *fixedcost.Service
	pricingService    *pricing.Service

	accountID   uuid.UUID
	accountName string

	currentView View

	signInView     view.SignInModel
	obligationView view.ObligationsModel
	fixedCostView  view.FixedCostsModel
	pricingView    view.PricingModel
}

type View int

const (
	ViewSignIn      View = 0
	ViewMenu        View = 1
	ViewObligations View = 2
	ViewFixedCosts  View = 3
	ViewPricing     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var pricingAdvisor pricing.Advisor

	if cfg.AdvisorEnabled() {
		adv, err := advisor.NewService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Warn("advisor unavailable", "error", err)
		} else {
			pricingAdvisor = adv
		}
	}

	accSvc := account.NewService(accountStore.New(db))
	obSvc := obligation.NewService(obligationStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	fcSvc := fixedcost.NewService(fixedCostStore.New(db))
	pricingSvc := pricing.NewService(pricingAdvisor)

	return model{
		accountService:    accSvc,
		obligationService: obSvc,
		ledgerService:     ledgerSvc,
		fixedCostService:  fcSvc,
		pricingService:    pricingSvc,
		currentView:       ViewSignIn,
		signInView:        view.NewSignInModel(accSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.signInView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewObligations
				m.obligationView = view.NewObligationsModel(m.obligationService, m.ledgerService, m.accountID)

				return m, m.obligationView.Init()
			case "2":
				m.currentView = ViewFixedCosts
				m.fixedCostView = view.NewFixedCostsModel(m.fixedCostService, m.accountID)

				return m, m.fixedCostView.Init()
			case "3":
				m.currentView = ViewPricing
				m.pricingView = view.NewPricingModel(m.pricingService, m.fixedCostService, m.accountID)

				return m, m.pricingView.Init()
			}
		}
	case view.SignedInMsg:
		m.accountID = msg.AccountID
		m.accountName = msg.Name
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		var newModel tea.Model
		newModel, cmd = m.signInView.Update(msg)
		m.signInView = newModel.(view.SignInModel)
	case ViewObligations:
		var newModel tea.Model
		newModel, cmd = m.obligationView.Update(msg)
		m.obligationView = newModel.(view.ObligationsModel)
	case ViewFixedCosts:
		var newModel tea.Model
		newModel, cmd = m.fixedCostView.Update(msg)
		m.fixedCostView = newModel.(view.FixedCostsModel)
	case ViewPricing:
		var newModel tea.Model
		newModel, cmd = m.pricingView.Update(msg)
		m.pricingView = newModel.(view.PricingModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewSignIn:
		return m.signInView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Gestor Maestro — " + m.accountName + "\n\n" +
				"1. Obrigações e pagamentos\n" +
				"2. Custos fixos\n" +
				"3. Precificação\n\n" +
				"q. Sair",
		)
	case ViewObligations:
		return m.obligationView.View()
	case ViewFixedCosts:
		return m.fixedCostView.View()
	case ViewPricing:
		return m.pricingView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
