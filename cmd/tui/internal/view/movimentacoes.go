package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/caipirao/caipirao/internal/dashboard"
	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/sale"
)

type movState int

const (
	movStateBrowse movState = iota
	movStateCustomRange
)

// MovimentacoesModel shows the unified sales+expenses history with the date
// and type filters and the signed running total.
type MovimentacoesModel struct {
	CommonModel
	saleService    *sale.Service
	expenseService *expense.Service

	state movState
	table table.Model

	entries []dashboard.Entry

	dateFilterIdx int
	typeFilterIdx int

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	customStart time.Time
	customEnd   time.Time

	loading bool
	err     error
}

func NewMovimentacoesModel(saleSvc *sale.Service, expenseSvc *expense.Service) MovimentacoesModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Tipo", Width: 9},
		{Title: "Descrição", Width: 32},
		{Title: "Valor", Width: 12},
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

	si := textinput.New()
	si.Placeholder = "AAAA-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "Início: "

	ei := textinput.New()
	ei.Placeholder = "AAAA-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "Fim:    "

	return MovimentacoesModel{
		saleService:    saleSvc,
		expenseService: expenseSvc,
		table:          t,
		startInput:     si,
		endInput:       ei,
		loading:        true,
	}
}

func (m MovimentacoesModel) Title() string { return "Movimentações" }
func (m MovimentacoesModel) ShortHelp() string {
	if m.state == movStateCustomRange {
		return "Tab: próximo campo | Enter: aplicar | Esc: cancelar"
	}

	return "Esc: back | d: data | t: tipo | r: refresh"
}

func (m MovimentacoesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MovimentacoesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case movLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.entries = dashboard.Merge(msg.sales, msg.expenses)
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case movStateBrowse:
		return m.updateBrowse(msg)
	case movStateCustomRange:
		return m.updateCustomRange(msg)
	}

	return m, nil
}

func (m MovimentacoesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			if m.dateFilterIdx == int(dashboard.FilterCustom) {
				m.state = movStateCustomRange
				m.focusIndex = 0
				m.startInput.Focus()
				m.endInput.Blur()

				return m, textinput.Blink
			}

			m.refreshTable()

			return m, nil
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MovimentacoesModel) updateCustomRange(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = movStateBrowse
			m.dateFilterIdx = int(dashboard.FilterToday)
			m.refreshTable()

			return m, nil
		case tea.KeyTab:
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.startInput.Focus()
				m.endInput.Blur()
			} else {
				m.endInput.Focus()
				m.startInput.Blur()
			}

			return m, textinput.Blink
		case tea.KeyEnter:
			start, errStart := time.Parse(time.DateOnly, m.startInput.Value())
			end, errEnd := time.Parse(time.DateOnly, m.endInput.Value())

			if errStart != nil || errEnd != nil {
				return m, nil
			}

			m.customStart = start
			m.customEnd = end
			m.state = movStateBrowse
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd

	if m.focusIndex == 0 {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

func (m MovimentacoesModel) filter() dashboard.HistoryFilter {
	f := dashboard.HistoryFilter{
		Data:   dashboard.DateFilter(m.dateFilterIdx),
		Inicio: m.customStart,
		Fim:    m.customEnd,
	}

	switch m.typeFilterIdx {
	case 1:
		f.Tipo = dashboard.EntryEntrada
	case 2:
		f.Tipo = dashboard.EntrySaida
	}

	return f
}

func (m *MovimentacoesModel) refreshTable() {
	filtered := dashboard.FilterHistory(m.entries, m.filter(), time.Now())

	rows := make([]table.Row, 0, len(filtered))

	for _, e := range filtered {
		rows = append(rows, table.Row{
			FormatDate(*e.Data),
			string(e.Tipo),
			e.Descricao,
			FormatCurrency(e.Valor),
		})
	}

	m.table.SetRows(rows)
}

func (m MovimentacoesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando movimentações...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	dateLabels := []string{"Hoje", "Mês atual", "Personalizado"}
	typeLabels := []string{"Todos", "Entradas", "Saídas"}

	header := fmt.Sprintf(
		"Filtro: [d] Data: %s | [t] Tipo: %s",
		activeStyle(dateLabels[m.dateFilterIdx]),
		activeStyle(typeLabels[m.typeFilterIdx]),
	)

	filtered := dashboard.FilterHistory(m.entries, m.filter(), time.Now())
	total := dashboard.RunningTotal(filtered)

	footer := fmt.Sprintf("Total do período: %s", FormatCurrency(total))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Bold(true).PaddingTop(1).Render(footer),
	)

	if m.state == movStateCustomRange {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(fmt.Sprintf("Período personalizado\n\n%s\n%s",
				m.startInput.View(), m.endInput.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

// Messages

type movLoadMsg struct {
	sales    []*sale.Sale
	expenses []*expense.Expense
	err      error
}

func (m MovimentacoesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sales, err := m.saleService.List(ctx)
		if err != nil {
			return movLoadMsg{err: err}
		}

		expenses, err := m.expenseService.List(ctx)
		if err != nil {
			return movLoadMsg{err: err}
		}

		return movLoadMsg{sales: sales, expenses: expenses}
	}
}
