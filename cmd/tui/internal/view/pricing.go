package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/fixedcost"
	"github.com/gestor-maestro/gestor/internal/pricing"
)

type PricingModel struct {
	pricing    *pricing.Service
	fixedCosts *fixedcost.Service
	accountID  uuid.UUID

	form  *huh.Form
	quote *pricing.Quote

	// Break-even against the account's monthly fixed costs.
	monthlyFixed float64

	status string
}

func NewPricingModel(pricingSvc *pricing.Service, fixedCostSvc *fixedcost.Service, accountID uuid.UUID) PricingModel {
	return PricingModel{
		pricing:    pricingSvc,
		fixedCosts: fixedCostSvc,
		accountID:  accountID,
		form:       newPricingForm(),
	}
}

func newPricingForm() *huh.Form {
	positiveAmount := func(s string) error {
		v, err := parseAmount(s)
		if err != nil || v < 0 {
			return fmt.Errorf("valor inválido")
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("product").
				Title("Produto").
				Placeholder("Bolo de cenoura").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("informe o produto")
					}
					return nil
				}),

			huh.NewInput().
				Key("material").
				Title("Custo de insumos (lote)").
				Placeholder("0,00").
				Validate(positiveAmount),

			huh.NewInput().
				Key("labor").
				Title("Custo de mão de obra (lote)").
				Placeholder("0,00").
				Validate(positiveAmount),

			huh.NewInput().
				Key("overhead").
				Title("Custos indiretos (lote)").
				Placeholder("0,00").
				Validate(positiveAmount),

			huh.NewInput().
				Key("yield").
				Title("Rendimento do lote (unidades)").
				Placeholder("10").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("informe um número inteiro positivo")
					}
					return nil
				}),

			huh.NewInput().
				Key("margin").
				Title("Margem desejada (%)").
				Placeholder("40").
				Validate(func(s string) error {
					v, err := parseAmount(s)
					if err != nil || v < 0 || v >= 100 {
						return fmt.Errorf("a margem deve estar entre 0 e 99")
					}
					return nil
				}),

			huh.NewInput().
				Key("current").
				Title("Preço atual (opcional)").
				Placeholder("0,00"),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m PricingModel) Title() string { return "Precificação" }
func (m PricingModel) ShortHelp() string {
	if m.quote != nil {
		return "n: nova simulação | Esc: voltar"
	}

	return "Preencha os custos do lote | Esc: voltar"
}

func (m PricingModel) Init() tea.Cmd {
	return m.form.Init()
}

type quoteResultMsg struct {
	quote        *pricing.Quote
	monthlyFixed float64
	err          error
}

func (m PricingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quoteResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro: %v", msg.err)
			m.form = newPricingForm()
			return m, m.form.Init()
		}
		m.quote = msg.quote
		m.monthlyFixed = msg.monthlyFixed
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.quote != nil {
			if msg.String() == "n" {
				m.quote = nil
				m.form = newPricingForm()
				return m, m.form.Init()
			}

			return m, nil
		}
	}

	if m.quote != nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.evaluateCmd()
}

func (m PricingModel) evaluateCmd() tea.Cmd {
	material, _ := parseAmount(m.form.GetString("material"))
	labor, _ := parseAmount(m.form.GetString("labor"))
	overhead, _ := parseAmount(m.form.GetString("overhead"))
	yield, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("yield")))
	margin, _ := parseAmount(m.form.GetString("margin"))

	current := 0.0
	if raw := strings.TrimSpace(m.form.GetString("current")); raw != "" {
		current, _ = parseAmount(raw)
	}

	params := pricing.QuoteParams{
		ProductName: m.form.GetString("product"),
		Batch: pricing.BatchInput{
			MaterialCost: material,
			LaborCost:    labor,
			OverheadCost: overhead,
			Yield:        yield,
		},
		TargetMargin: margin,
		CurrentPrice: current,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		quote, err := m.pricing.Evaluate(ctx, params)
		if err != nil {
			return quoteResultMsg{err: err}
		}

		var monthlyFixed float64
		if costs, err := m.fixedCosts.List(ctx, m.accountID); err == nil {
			for _, fc := range costs {
				monthlyFixed += fc.Amount
			}
		}

		return quoteResultMsg{quote: quote, monthlyFixed: monthlyFixed}
	}
}

func (m PricingModel) View() string {
	if m.quote == nil {
		content := "Simular precificação\n\n" + m.form.View()
		if m.status != "" {
			content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.status)
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	q := m.quote

	var b strings.Builder

	fmt.Fprintf(&b, "Precificação de %s\n\n", q.ProductName)
	fmt.Fprintf(&b, "Custo por unidade:   %s\n", FormatAmount(q.UnitCost))
	fmt.Fprintf(&b, "Margem desejada:     %.1f%%\n", q.TargetMargin)
	fmt.Fprintf(&b, "Preço sugerido:      %s\n", FormatAmount(q.SuggestedPrice))

	if q.CurrentPrice > 0 {
		fmt.Fprintf(&b, "Preço atual:         %s (margem de %.1f%%)\n", FormatAmount(q.CurrentPrice), q.CurrentMargin)
	}

	if m.monthlyFixed > 0 {
		units := pricing.BreakEvenUnits(m.monthlyFixed, q.UnitCost, q.SuggestedPrice)
		if units > 0 {
			fmt.Fprintf(&b, "\nPonto de equilíbrio: %d unidades/mês\n(custos fixos de %s)\n", units, FormatAmount(m.monthlyFixed))
		}
	}

	if q.Explanation != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Width(60).Render(q.Explanation) + "\n")
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}
