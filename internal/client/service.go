package client

import (
	"context"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	ListClients(ctx context.Context) ([]*Client, error)
	CreateClient(ctx context.Context, c *Client) error
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Nome             string
	Contato          string
	NomeResponsavel  string
	TelefoneWhatsapp bool
	Logradouro       string
	Quadra           string
	Lote             string
	Bairro           string
	CEP              string
	PontoReferencia  string
}

func (p CreateParams) validate() error {
	if p.Nome == "" || p.Contato == "" {
		return httpx.Wrap(httpx.ErrValidation, "Os campos 'nome' e 'contato' são obrigatórios.")
	}

	return nil
}

func (p CreateParams) toClient() *Client {
	return &Client{
		Nome:             p.Nome,
		Contato:          p.Contato,
		NomeResponsavel:  p.NomeResponsavel,
		TelefoneWhatsapp: p.TelefoneWhatsapp,
		Logradouro:       p.Logradouro,
		Quadra:           p.Quadra,
		Lote:             p.Lote,
		Bairro:           p.Bairro,
		CEP:              p.CEP,
		PontoReferencia:  p.PontoReferencia,
	}
}

func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.ListClients(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	c := params.toClient()
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (*Client, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	c := params.toClient()
	c.ID = id

	if err := s.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteClient(ctx, id)
}

// CreateBatch inserts every client parsed from a spreadsheet import. Rows are
// validated up front so a bad line rejects the whole file.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Client, error) {
	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	clients := make([]*Client, 0, len(params))

	for _, p := range params {
		c := p.toClient()
		if err := s.repo.CreateClient(ctx, c); err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, nil
}
