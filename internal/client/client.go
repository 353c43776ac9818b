package client

// Status is derived from purchase recency, never stored.
type Status string

const (
	StatusAtivo   Status = "Ativo"
	StatusInativo Status = "Inativo"
)

// ActivityWindowDays is the purchase-recency window that keeps a client Ativo.
const ActivityWindowDays = 90

type Client struct {
	ID               int64
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

	// Status is only populated on listings; a client with no sale within the
	// last 90 days (or no sales at all) is Inativo.
	Status Status
}
