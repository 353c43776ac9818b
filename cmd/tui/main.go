package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/caipirao/caipirao/cmd/tui/internal/view"
	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/client"
	clientStore "github.com/caipirao/caipirao/internal/client/store"
	"github.com/caipirao/caipirao/internal/config"
	"github.com/caipirao/caipirao/internal/database"
	"github.com/caipirao/caipirao/internal/expense"
	expenseStore "github.com/caipirao/caipirao/internal/expense/store"
	"github.com/caipirao/caipirao/internal/matching"
	matchingStore "github.com/caipirao/caipirao/internal/matching/store"
	"github.com/caipirao/caipirao/internal/product"
	productStore "github.com/caipirao/caipirao/internal/product/store"
	"github.com/caipirao/caipirao/internal/sale"
	saleStore "github.com/caipirao/caipirao/internal/sale/store"
	"github.com/caipirao/caipirao/internal/user"
	userStore "github.com/caipirao/caipirao/internal/user/store"
)

type model struct {
	saleService     *sale.Service
	expenseService  *expense.Service
	clientService   *client.Service
	productService  *product.Service
	userService     *user.Service
	matchingService *matching.Service

	currentView View

	dashboardView view.DashboardModel
	movView       view.MovimentacoesModel
	vendaView     view.VendaModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewMov       View = 2
	ViewVenda     View = 3
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

	saleSvc := sale.NewService(saleStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	clientSvc := client.NewService(clientStore.New(db))
	productSvc := product.NewService(productStore.New(db))
	userSvc := user.NewService(userStore.New(db), auth.NewHasher(cfg.Auth.BcryptCost))
	matchSvc := matching.NewService(matchingStore.New(db))

	return model{
		saleService:     saleSvc,
		expenseService:  expenseSvc,
		clientService:   clientSvc,
		productService:  productSvc,
		userService:     userSvc,
		matchingService: matchSvc,
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(saleSvc, expenseSvc),
		movView:         view.NewMovimentacoesModel(saleSvc, expenseSvc),
		vendaView:       view.NewVendaModel(saleSvc, clientSvc, productSvc, userSvc, matchSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.saleService, m.expenseService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewMov
				m.movView = view.NewMovimentacoesModel(m.saleService, m.expenseService)

				return m, m.movView.Init()
			case "3":
				m.currentView = ViewVenda
				m.vendaView = view.NewVendaModel(m.saleService, m.clientService,
					m.productService, m.userService, m.matchingService)

				return m, m.vendaView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewMov:
		var newModel tea.Model
		newModel, cmd = m.movView.Update(msg)
		m.movView = newModel.(view.MovimentacoesModel)
	case ViewVenda:
		var newModel tea.Model
		newModel, cmd = m.vendaView.Update(msg)
		m.vendaView = newModel.(view.VendaModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Caipirão\n\n" +
				"1. Dashboard\n" +
				"2. Movimentações\n" +
				"3. Nova Venda\n\n" +
				"q. Sair",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewMov:
		return m.movView.View()
	case ViewVenda:
		return m.vendaView.View()
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
