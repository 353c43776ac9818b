package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/caipirao/caipirao/internal/dashboard"
	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/sale"
)

type dashboardState int

const (
	dashboardStateBrowse dashboardState = iota
	dashboardStatePay
)

// DashboardModel renders the month KPIs, the income-vs-expense series, the
// product breakdown and the upcoming due list. The due list supports settling
// a sale in place.
type DashboardModel struct {
	CommonModel
	saleService    *sale.Service
	expenseService *expense.Service

	state dashboardState

	sales    []*sale.Sale
	expenses []*expense.Expense
	period   dashboard.Period

	dueTable table.Model
	dues     []dashboard.Due

	form     *huh.Form
	payDate  string
	paySale  *sale.Sale
	loading  bool
	err      error
	statusLn string
}

func NewDashboardModel(saleSvc *sale.Service, expenseSvc *expense.Service) DashboardModel {
	columns := []table.Column{
		{Title: "Cliente", Width: 28},
		{Title: "Valor", Width: 12},
		{Title: "Vencimento", Width: 12},
		{Title: "Dias", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
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

	return DashboardModel{
		saleService:    saleSvc,
		expenseService: expenseSvc,
		dueTable:       t,
		period:         dashboard.PeriodSixMonths,
		loading:        true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	if m.state == dashboardStatePay {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | p: período | enter: quitar venda | r: refresh"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.sales = msg.sales
		m.expenses = msg.expenses
		m.refreshDues()

		return m, nil

	case dashboardPaidMsg:
		if msg.err != nil {
			m.statusLn = fmt.Sprintf("Erro ao quitar: %v", msg.err)
		} else {
			m.statusLn = "Venda quitada."
		}

		m.state = dashboardStateBrowse
		m.form = nil
		m.dueTable.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case dashboardStateBrowse:
		return m.updateBrowse(msg)
	case dashboardStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m DashboardModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			m.period = (m.period + 1) % 3
			return m, nil
		case "enter":
			return m.enterPayMode()
		}
	}

	var cmd tea.Cmd
	m.dueTable, cmd = m.dueTable.Update(msg)

	return m, cmd
}

func (m DashboardModel) enterPayMode() (tea.Model, tea.Cmd) {
	idx := m.dueTable.Cursor()
	if idx < 0 || idx >= len(m.dues) {
		return m, nil
	}

	m.paySale = m.dues[idx].Venda
	m.payDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("data_pagamento").
				Title("Data de pagamento").
				Placeholder("AAAA-MM-DD").
				Value(&m.payDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use o formato AAAA-MM-DD")
					}

					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = dashboardStatePay
	m.dueTable.Blur()

	return m, m.form.Init()
}

func (m DashboardModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = dashboardStateBrowse
			m.form = nil
			m.dueTable.Focus()

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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando movimentações...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	now := time.Now()

	kpis := dashboard.MonthKPIs(m.sales, m.expenses, now)
	kpiLine := fmt.Sprintf(
		"Mês atual  |  Entradas: %s  Saídas: %s  Saldo: %s",
		FormatCurrency(kpis.Entradas),
		FormatCurrency(kpis.Saidas),
		FormatCurrency(kpis.Saldo),
	)

	series := dashboard.Series(m.sales, m.expenses, m.period, now)

	var sb strings.Builder

	fmt.Fprintf(&sb, "Entradas x Saídas (%s)\n", m.period)

	for _, b := range series {
		fmt.Fprintf(&sb, "  %-12s  +%-12s  -%s\n",
			b.Label, FormatCurrency(b.Entradas), FormatCurrency(b.Saidas))
	}

	sb.WriteString("\nProdutos no período\n")

	breakdown := dashboard.ProductBreakdown(m.sales, m.period, now)
	for i, p := range breakdown {
		if i == 5 {
			break
		}

		fmt.Fprintf(&sb, "  %-24s  %-12s  %.3f\n",
			p.Nome, FormatCurrency(p.Faturamento), p.Peso)
	}

	dueView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.dueTable.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(kpiLine),
		sb.String(),
		"Vencimentos nos próximos 5 dias",
		dueView,
	)

	if m.state == dashboardStatePay && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(fmt.Sprintf("Quitar venda de %s\n\n%s", m.paySale.ClienteNome, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.statusLn != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.statusLn) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *DashboardModel) refreshDues() {
	m.dues = dashboard.UpcomingDue(m.sales, time.Now())

	rows := make([]table.Row, 0, len(m.dues))
	for _, d := range m.dues {
		rows = append(rows, table.Row{
			d.ClienteNome,
			FormatCurrency(d.ValorTotal),
			FormatDate(d.DataVencimento),
			fmt.Sprintf("%d", d.DiasParaVencer),
		})
	}

	m.dueTable.SetRows(rows)
}

// Messages

type dashboardLoadMsg struct {
	sales    []*sale.Sale
	expenses []*expense.Expense
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.saleService.List(ctx)
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		expenses, err := m.expenseService.List(ctx)
		if err != nil {
			return dashboardLoadMsg{err: err}
		}

		return dashboardLoadMsg{sales: sales, expenses: expenses}
	}
}

type dashboardPaidMsg struct {
	err error
}

func (m DashboardModel) payCmd() tea.Cmd {
	venda := m.paySale
	payDate := strings.TrimSpace(m.payDate)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		paid, err := time.Parse(time.DateOnly, payDate)
		if err != nil {
			return dashboardPaidMsg{err: err}
		}

		_, err = m.saleService.Update(ctx, venda.ID, sale.CreateParams{
			ClienteID:          venda.ClienteID,
			ProdutoNome:        venda.ProdutoNome,
			DataVenda:          venda.DataVenda,
			ValorTotal:         venda.ValorTotal,
			Peso:               venda.Peso,
			DataPagamento:      &paid,
			DataVencimento:     venda.DataVencimento,
			PrecoManual:        venda.PrecoManual,
			ResponsavelVendaID: venda.ResponsavelVendaID,
		})

		return dashboardPaidMsg{err: err}
	}
}
