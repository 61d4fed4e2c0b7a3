package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gestor-maestro/gestor/internal/ledger"
	"github.com/gestor-maestro/gestor/internal/obligation"
)

type obligationsState int

const (
	obligationsStateBrowse obligationsState = iota
	obligationsStatePay
	obligationsStateHistory
)

var statusLabels = map[obligation.Status]string{
	obligation.StatusPending: "Pendente",
	obligation.StatusSettled: "Quitada",
	obligation.StatusPaid:    "Paga",
}

type ObligationsModel struct {
	obligations *obligation.Service
	payments    *ledger.Service
	accountID   uuid.UUID

	state obligationsState
	table table.Model
	obs   []*obligation.Obligation
	form  *huh.Form

	statusFilterIdx int
	filter          obligation.ListFilter

	history []*obligation.PaymentRecord

	loading bool
	err     error
	status  string
}

func NewObligationsModel(obSvc *obligation.Service, ledgerSvc *ledger.Service, accountID uuid.UUID) ObligationsModel {
	columns := []table.Column{
		{Title: "Criada em", Width: 12},
		{Title: "Título", Width: 32},
		{Title: "Categoria", Width: 16},
		{Title: "Status", Width: 10},
		{Title: "Saldo", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	return ObligationsModel{
		obligations: obSvc,
		payments:    ledgerSvc,
		accountID:   accountID,
		table:       t,
		filter:      obligation.ListFilter{OwnerID: accountID},
	}
}

func (m ObligationsModel) Title() string { return "Obrigações" }
func (m ObligationsModel) ShortHelp() string {
	switch m.state {
	case obligationsStatePay:
		return "Preencha o pagamento | Esc: cancelar"
	case obligationsStateHistory:
		return "Esc: voltar"
	}

	return "Esc: voltar | p: pagar | v: pagamentos | s: filtro de status | r: atualizar"
}

func (m ObligationsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ObligationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadObligationsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.obs = msg.obs
		m.err = nil
		m.refreshTable()
		return m, nil

	case payResultMsg:
		m.state = obligationsStateBrowse
		m.form = nil
		m.table.Focus()
		m.status = payStatusLine(msg)
		return m, m.loadCmd()

	case loadHistoryMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao carregar pagamentos: %v", msg.err)
			m.state = obligationsStateBrowse
			return m, nil
		}
		m.history = msg.records
		m.state = obligationsStateHistory
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case obligationsStateBrowse:
		return m.updateBrowse(msg)
	case obligationsStatePay:
		return m.updatePay(msg)
	case obligationsStateHistory:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = obligationsStateBrowse
			m.history = nil
		}
		return m, nil
	}

	return m, nil
}

func (m ObligationsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			return m.enterPayMode()
		case "v":
			if ob := m.selected(); ob != nil {
				return m, m.loadHistoryCmd(ob.ID)
			}
			return m, nil
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ObligationsModel) selected() *obligation.Obligation {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.obs) {
		return nil
	}

	return m.obs[idx]
}

func (m ObligationsModel) enterPayMode() (tea.Model, tea.Cmd) {
	ob := m.selected()
	if ob == nil {
		return m, nil
	}

	if ob.Status != obligation.StatusPending {
		m.status = "Somente obrigações pendentes podem receber pagamentos."
		return m, nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Valor").
				Placeholder("0,00").
				Validate(func(s string) error {
					v, err := parseAmount(s)
					if err != nil {
						return fmt.Errorf("valor inválido")
					}
					if v <= 0 {
						return fmt.Errorf("o valor deve ser positivo")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Data do pagamento").
				Placeholder("DD/MM/AAAA").
				Suggestions([]string{time.Now().Format("02/01/2006")}).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil // defaults to today
					}
					if _, err := time.Parse("02/01/2006", s); err != nil {
						return fmt.Errorf("use o formato DD/MM/AAAA")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("method").
				Title("Forma de pagamento").
				Options(
					huh.NewOption("Pix", "pix"),
					huh.NewOption("Dinheiro", "dinheiro"),
					huh.NewOption("Cartão", "cartao"),
					huh.NewOption("Transferência", "transferencia"),
				),

			huh.NewInput().
				Key("notes").
				Title("Observações").
				Placeholder("opcional"),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = obligationsStatePay
	m.table.Blur()
	return m, m.form.Init()
}

func (m ObligationsModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = obligationsStateBrowse
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

	return m, m.payCmd()
}

func (m ObligationsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando obrigações...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	filterLabels := []string{"Todas", "Pendentes", "Quitadas", "Pagas"}

	header := fmt.Sprintf("Filtro: [s] Status: %s", activeStyle(filterLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	switch {
	case m.state == obligationsStatePay && m.form != nil:
		title := ""
		if ob := m.selected(); ob != nil {
			title = fmt.Sprintf("%s\nSaldo devedor: %s", ob.Title, FormatAmount(ob.Amount))
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Registrar pagamento\n\n%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)

	case m.state == obligationsStateHistory:
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.historyPanel())
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ObligationsModel) historyPanel() string {
	var b strings.Builder

	b.WriteString("Pagamentos registrados\n\n")

	if len(m.history) == 0 {
		b.WriteString("Nenhum pagamento até agora.")
	}

	for _, rec := range m.history {
		fmt.Fprintf(&b, "%s  %s  %s\n", FormatDate(rec.PaymentDate), FormatAmount(rec.Amount), rec.PaymentMethod)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(48).
		Render(b.String())
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ObligationsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		s := obligation.StatusPending
		m.filter.Status = &s
	case 2:
		s := obligation.StatusSettled
		m.filter.Status = &s
	case 3:
		s := obligation.StatusPaid
		m.filter.Status = &s
	default:
		m.filter.Status = nil
	}
}

func (m *ObligationsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.obs))
	for _, ob := range m.obs {
		rows = append(rows, table.Row{
			FormatDate(ob.CreatedAt),
			ob.Title,
			ob.Category,
			statusLabels[ob.Status],
			FormatAmount(ob.Amount),
		})
	}
	m.table.SetRows(rows)
}

// parseAmount accepts both "1234.56" and the Brazilian "1.234,56".
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return strconv.ParseFloat(s, 64)
}

func payStatusLine(msg payResultMsg) string {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, ledger.ErrExceedsOutstanding):
			return "O pagamento excede o saldo devedor."
		case errors.Is(msg.err, ledger.ErrNotPending):
			return "A obrigação não está mais pendente."
		case errors.Is(msg.err, ledger.ErrAmountNotPositive):
			return "O valor do pagamento deve ser positivo."
		default:
			return fmt.Sprintf("Erro ao registrar pagamento: %v", msg.err)
		}
	}

	if msg.receipt.Settled {
		return "Obrigação quitada."
	}

	return fmt.Sprintf("Pagamento registrado. Saldo restante: %s", FormatAmount(msg.receipt.RemainingAmount))
}

// Messages

type loadObligationsMsg struct {
	obs []*obligation.Obligation
	err error
}

func (m ObligationsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		obs, err := m.obligations.List(ctx, filter)
		return loadObligationsMsg{obs: obs, err: err}
	}
}

type payResultMsg struct {
	receipt *ledger.Receipt
	err     error
}

func (m ObligationsModel) payCmd() tea.Cmd {
	ob := m.selected()
	if ob == nil {
		return nil
	}

	amount, err := parseAmount(m.form.GetString("amount"))
	if err != nil {
		return func() tea.Msg { return payResultMsg{err: err} }
	}

	paymentDate := time.Now()
	if raw := strings.TrimSpace(m.form.GetString("date")); raw != "" {
		if parsed, err := time.Parse("02/01/2006", raw); err == nil {
			paymentDate = parsed
		}
	}

	params := ledger.ApplyParams{
		ObligationID:  ob.ID,
		Amount:        amount,
		PaymentDate:   paymentDate,
		PaymentMethod: m.form.GetString("method"),
		Notes:         m.form.GetString("notes"),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		receipt, err := m.payments.Apply(ctx, m.accountID, params)
		return payResultMsg{receipt: receipt, err: err}
	}
}

type loadHistoryMsg struct {
	records []*obligation.PaymentRecord
	err     error
}

func (m ObligationsModel) loadHistoryCmd(obligationID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.obligations.ListPayments(ctx, obligation.PaymentFilter{
			OwnerID:            m.accountID,
			SourceObligationID: &obligationID,
		})
		return loadHistoryMsg{records: records, err: err}
	}
}
