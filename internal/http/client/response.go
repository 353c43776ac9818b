package client

import (
	"github.com/caipirao/caipirao/internal/client"
)

type clientResponse struct {
	ID               int64  `json:"id"`
	Nome             string `json:"nome"`
	Contato          string `json:"contato"`
	NomeResponsavel  string `json:"nome_responsavel,omitempty"`
	TelefoneWhatsapp bool   `json:"telefone_whatsapp"`
	Logradouro       string `json:"logradouro,omitempty"`
	Quadra           string `json:"quadra,omitempty"`
	Lote             string `json:"lote,omitempty"`
	Bairro           string `json:"bairro,omitempty"`
	CEP              string `json:"cep,omitempty"`
	PontoReferencia  string `json:"ponto_referencia,omitempty"`
	Status           string `json:"status,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:               c.ID,
		Nome:             c.Nome,
		Contato:          c.Contato,
		NomeResponsavel:  c.NomeResponsavel,
		TelefoneWhatsapp: c.TelefoneWhatsapp,
		Logradouro:       c.Logradouro,
		Quadra:           c.Quadra,
		Lote:             c.Lote,
		Bairro:           c.Bairro,
		CEP:              c.CEP,
		PontoReferencia:  c.PontoReferencia,
		Status:           string(c.Status),
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}
