package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/fixedcost"
)

type fixedCostsState int

const (
	fixedCostsStateBrowse fixedCostsState = iota
	fixedCostsStateNew
)

type FixedCostsModel struct {
	fixedCosts *fixedcost.Service
	accountID  uuid.UUID

	state fixedCostsState
	table table.Model
	costs []*fixedcost.FixedCost
	form  *huh.Form

	loading bool
	err     error
	status  string
}

func NewFixedCostsModel(svc *fixedcost.Service, accountID uuid.UUID) FixedCostsModel {
	columns := []table.Column{
		{Title: "Nome", Width: 30},
		{Title: "Categoria", Width: 18},
		{Title: "Valor mensal", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return FixedCostsModel{
		fixedCosts: svc,
		accountID:  accountID,
		table:      t,
	}
}

func (m FixedCostsModel) Title() string { return "Custos fixos" }
func (m FixedCostsModel) ShortHelp() string {
	if m.state == fixedCostsStateNew {
		return "Preencha o custo fixo | Esc: cancelar"
	}

	return "Esc: voltar | n: novo | x: remover | r: atualizar"
}

func (m FixedCostsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m FixedCostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadFixedCostsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.costs = msg.costs
		m.err = nil
		m.refreshTable()
		return m, nil

	case fixedCostSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao salvar: %v", msg.err)
		} else {
			m.status = "Custo fixo registrado. Uma obrigação mensal será gerada automaticamente."
		}
		m.state = fixedCostsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCmd()

	case fixedCostDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao remover: %v", msg.err)
		} else {
			m.status = "Custo fixo removido."
		}
		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == fixedCostsStateNew {
		return m.updateNew(msg)
	}

	return m.updateBrowse(msg)
}

func (m FixedCostsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterNewMode()
		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.costs) {
				return m, m.deleteCmd(m.costs[idx].ID)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m FixedCostsModel) enterNewMode() (tea.Model, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Nome").
				Placeholder("Aluguel").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("informe o nome")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Valor mensal").
				Placeholder("0,00").
				Validate(func(s string) error {
					v, err := parseAmount(s)
					if err != nil || v <= 0 {
						return fmt.Errorf("valor inválido")
					}
					return nil
				}),

			huh.NewInput().
				Key("category").
				Title("Categoria").
				Placeholder("Custos fixos"),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = fixedCostsStateNew
	m.table.Blur()
	return m, m.form.Init()
}

func (m FixedCostsModel) updateNew(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = fixedCostsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m FixedCostsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando custos fixos...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	var total float64
	for _, fc := range m.costs {
		total += fc.Amount
	}

	header := fmt.Sprintf("Total mensal: %s", activeStyle(FormatAmount(total)))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == fixedCostsStateNew && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Novo custo fixo\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *FixedCostsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.costs))
	for _, fc := range m.costs {
		rows = append(rows, table.Row{
			fc.Name,
			fc.Category,
			FormatAmount(fc.Amount),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadFixedCostsMsg struct {
	costs []*fixedcost.FixedCost
	err   error
}

func (m FixedCostsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		costs, err := m.fixedCosts.List(ctx, m.accountID)
		return loadFixedCostsMsg{costs: costs, err: err}
	}
}

type fixedCostSavedMsg struct {
	err error
}

func (m FixedCostsModel) saveCmd() tea.Cmd {
	name := m.form.GetString("name")
	category := m.form.GetString("category")

	amount, err := parseAmount(m.form.GetString("amount"))
	if err != nil {
		return func() tea.Msg { return fixedCostSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.fixedCosts.Create(ctx, fixedcost.CreateParams{
			OwnerID:  m.accountID,
			Name:     name,
			Amount:   amount,
			Category: category,
		})
		return fixedCostSavedMsg{err: err}
	}
}

type fixedCostDeletedMsg struct {
	err error
}

func (m FixedCostsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.fixedCosts.Delete(ctx, m.accountID, id)
		return fixedCostDeletedMsg{err: err}
	}
}
