package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/caipirao/caipirao/internal/client"
	"github.com/caipirao/caipirao/internal/matching"
	"github.com/caipirao/caipirao/internal/product"
	"github.com/caipirao/caipirao/internal/sale"
	"github.com/caipirao/caipirao/internal/user"
)

type vendaState int

const (
	vendaStateLoading vendaState = iota
	vendaStateForm
	vendaStateDone
)

// VendaModel is the sale entry form. The total is computed from quantity and
// unit price before submission, with the manual price taking precedence, and
// persisted as given.
type VendaModel struct {
	CommonModel
	saleService     *sale.Service
	clientService   *client.Service
	productService  *product.Service
	userService     *user.Service
	matchingService *matching.Service

	state vendaState
	form  *huh.Form

	clients  []*client.Client
	products []*product.Product
	users    []*user.User

	clienteID      int64
	productIdx     int
	responsavelID  int64
	peso           string
	precoManual    string
	dataVenda      string
	dataVencimento string
	descricaoLivre string

	status string
	err    error
}

func NewVendaModel(
	saleSvc *sale.Service,
	clientSvc *client.Service,
	productSvc *product.Service,
	userSvc *user.Service,
	matchSvc *matching.Service,
) VendaModel {
	return VendaModel{
		saleService:     saleSvc,
		clientService:   clientSvc,
		productService:  productSvc,
		userService:     userSvc,
		matchingService: matchSvc,
		state:           vendaStateLoading,
	}
}

func (m VendaModel) Title() string { return "Nova Venda" }
func (m VendaModel) ShortHelp() string {
	return "Navigate form | Esc: back"
}

func (m VendaModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m VendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vendaLoadMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.clients = msg.clients
		m.products = msg.products
		m.users = msg.users
		m.dataVenda = FormatDate(time.Now())
		m.buildForm()
		m.state = vendaStateForm

		return m, m.form.Init()

	case vendaSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao salvar: %v", msg.err)
			m.state = vendaStateForm

			return m, nil
		}

		m.status = fmt.Sprintf("Venda registrada: %s", FormatCurrency(msg.valorTotal))
		m.state = vendaStateDone

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc || m.state == vendaStateDone {
			return m, Back
		}
	}

	if m.state != vendaStateForm || m.form == nil {
		return m, nil
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

func (m *VendaModel) buildForm() {
	clientOpts := make([]huh.Option[int64], 0, len(m.clients))
	for _, c := range m.clients {
		clientOpts = append(clientOpts, huh.NewOption(c.Nome, c.ID))
	}

	productOpts := make([]huh.Option[int], 0, len(m.products))
	for i, p := range m.products {
		label := fmt.Sprintf("%s (%s / %s)", p.Nome, FormatCurrency(p.Preco), p.UnidadeMedida)
		productOpts = append(productOpts, huh.NewOption(label, i))
	}

	userOpts := make([]huh.Option[int64], 0, len(m.users))
	for _, u := range m.users {
		userOpts = append(userOpts, huh.NewOption(u.DisplayName(), u.ID))
	}

	dateValidate := func(s string) error {
		if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("use o formato AAAA-MM-DD")
		}

		return nil
	}

	optionalDateValidate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}

		return dateValidate(s)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Key("cliente").
				Title("Cliente").
				Options(clientOpts...).
				Value(&m.clienteID),

			huh.NewSelect[int]().
				Key("produto").
				Title("Produto").
				Options(productOpts...).
				Value(&m.productIdx),

			huh.NewSelect[int64]().
				Key("responsavel").
				Title("Vendedor responsável").
				Options(userOpts...).
				Value(&m.responsavelID),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("peso").
				Title("Quantidade (peso)").
				Placeholder("2.000").
				Value(&m.peso).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("informe uma quantidade positiva")
					}

					return nil
				}),

			huh.NewInput().
				Key("preco_manual").
				Title("Preço manual (opcional)").
				Value(&m.precoManual).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}

					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("preço inválido")
					}

					return nil
				}),

			huh.NewInput().
				Key("data_venda").
				Title("Data da venda").
				Value(&m.dataVenda).
				Validate(dateValidate),

			huh.NewInput().
				Key("data_vencimento").
				Title("Vencimento (opcional)").
				Value(&m.dataVencimento).
				Validate(optionalDateValidate),

			huh.NewInput().
				Key("descricao_livre").
				Title("Descrição livre (opcional)").
				Placeholder("como a venda foi anotada").
				Value(&m.descricaoLivre),
		),
	).WithWidth(52).WithShowHelp(false)
}

func (m VendaModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	switch m.state {
	case vendaStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Carregando cadastros...")
	case vendaStateDone:
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nPressione qualquer tecla para voltar.")
	}

	content := m.form.View()

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type vendaLoadMsg struct {
	clients  []*client.Client
	products []*product.Product
	users    []*user.User
	err      error
}

func (m VendaModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		clients, err := m.clientService.List(ctx)
		if err != nil {
			return vendaLoadMsg{err: err}
		}

		products, err := m.productService.List(ctx)
		if err != nil {
			return vendaLoadMsg{err: err}
		}

		users, err := m.userService.List(ctx)
		if err != nil {
			return vendaLoadMsg{err: err}
		}

		return vendaLoadMsg{clients: clients, products: products, users: users}
	}
}

type vendaSavedMsg struct {
	valorTotal float64
	err        error
}

func (m VendaModel) saveCmd() tea.Cmd {
	if m.productIdx < 0 || m.productIdx >= len(m.products) {
		return nil
	}

	produto := m.products[m.productIdx]

	peso, err := strconv.ParseFloat(strings.TrimSpace(m.peso), 64)
	if err != nil {
		return func() tea.Msg { return vendaSavedMsg{err: err} }
	}

	var precoManual *float64

	if s := strings.TrimSpace(m.precoManual); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return func() tea.Msg { return vendaSavedMsg{err: err} }
		}

		precoManual = &v
	}

	valorTotal := sale.TotalValue(peso, produto.Preco, precoManual)

	clienteID := m.clienteID
	responsavelID := m.responsavelID
	dataVenda := strings.TrimSpace(m.dataVenda)
	dataVencimento := strings.TrimSpace(m.dataVencimento)
	descricaoLivre := strings.TrimSpace(m.descricaoLivre)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		venda, err := time.Parse(time.DateOnly, dataVenda)
		if err != nil {
			return vendaSavedMsg{err: err}
		}

		var vencimento *time.Time

		if dataVencimento != "" {
			t, err := time.Parse(time.DateOnly, dataVencimento)
			if err != nil {
				return vendaSavedMsg{err: err}
			}

			vencimento = &t
		}

		_, err = m.saleService.Create(ctx, sale.CreateParams{
			ClienteID:          clienteID,
			ProdutoNome:        produto.Nome,
			DataVenda:          venda,
			ValorTotal:         valorTotal,
			Peso:               &peso,
			DataVencimento:     vencimento,
			PrecoManual:        precoManual,
			ResponsavelVendaID: responsavelID,
		})
		if err != nil {
			return vendaSavedMsg{err: err}
		}

		if descricaoLivre != "" && descricaoLivre != produto.Nome {
			// Remember how the operator wrote it so the next entry snaps to
			// the catalog name.
			_ = m.matchingService.Learn(ctx, descricaoLivre, produto.Nome)
		}

		return vendaSavedMsg{valorTotal: valorTotal}
	}
}
