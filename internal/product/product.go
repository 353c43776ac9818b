package product

// UnidadeMedida is the unit products are sold in.
type UnidadeMedida string

const (
	UnidadeKg UnidadeMedida = "kg"
	UnidadeUn UnidadeMedida = "un"
)

func (u UnidadeMedida) Valid() bool {
	return u == UnidadeKg || u == UnidadeUn
}

type Product struct {
	ID            int64
	Nome          string
	Descricao     string
	Preco         float64
	UnidadeMedida UnidadeMedida
}
