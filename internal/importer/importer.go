// Package importer parses client spreadsheets exported from Excel or Google
// Sheets into create parameters for bulk onboarding.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/caipirao/caipirao/internal/client"
	"github.com/caipirao/caipirao/internal/encoding"
)

// column indices found by the header scan; -1 means the column is absent.
type layout struct {
	nome            int
	contato         int
	responsavel     int
	whatsapp        int
	logradouro      int
	quadra          int
	lote            int
	bairro          int
	cep             int
	pontoReferencia int
}

func newLayout() layout {
	return layout{
		nome: -1, contato: -1, responsavel: -1, whatsapp: -1,
		logradouro: -1, quadra: -1, lote: -1, bairro: -1,
		cep: -1, pontoReferencia: -1,
	}
}

// headerAliases maps normalized header cells to layout fields. Spreadsheets in
// the wild disagree on capitalization and accents, so matching happens on the
// lowercased, trimmed cell.
var headerAliases = map[string]func(*layout, int){
	"nome":                func(l *layout, i int) { l.nome = i },
	"cliente":             func(l *layout, i int) { l.nome = i },
	"contato":             func(l *layout, i int) { l.contato = i },
	"telefone":            func(l *layout, i int) { l.contato = i },
	"responsável":         func(l *layout, i int) { l.responsavel = i },
	"responsavel":         func(l *layout, i int) { l.responsavel = i },
	"nome responsável":    func(l *layout, i int) { l.responsavel = i },
	"whatsapp":            func(l *layout, i int) { l.whatsapp = i },
	"logradouro":          func(l *layout, i int) { l.logradouro = i },
	"endereço":            func(l *layout, i int) { l.logradouro = i },
	"endereco":            func(l *layout, i int) { l.logradouro = i },
	"quadra":              func(l *layout, i int) { l.quadra = i },
	"lote":                func(l *layout, i int) { l.lote = i },
	"bairro":              func(l *layout, i int) { l.bairro = i },
	"cep":                 func(l *layout, i int) { l.cep = i },
	"ponto de referência": func(l *layout, i int) { l.pontoReferencia = i },
	"ponto de referencia": func(l *layout, i int) { l.pontoReferencia = i },
	"referência":          func(l *layout, i int) { l.pontoReferencia = i },
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse decodes the spreadsheet to UTF-8, locates the header row and returns
// one CreateParams per data row. Rows above the header (titles, blank lines)
// and rows without a name are skipped.
func (s *Service) Parse(r io.Reader) ([]client.CreateParams, error) {
	decoded, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding spreadsheet: %w", err)
	}

	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	var (
		params      []client.CreateParams
		cols        layout
		headerFound bool
	)

	for _, row := range rows {
		if !headerFound {
			cols, headerFound = matchHeader(row)
			continue
		}

		p := readRow(row, cols)
		if p.Nome == "" {
			continue
		}

		params = append(params, p)
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row with 'nome' and 'contato' columns found")
	}

	return params, nil
}

// matchHeader treats a row as the header when both the name and the contact
// columns are present.
func matchHeader(row []string) (layout, bool) {
	l := newLayout()

	for i, cell := range row {
		key := strings.ToLower(strings.TrimSpace(cell))
		if set, ok := headerAliases[key]; ok {
			set(&l, i)
		}
	}

	return l, l.nome != -1 && l.contato != -1
}

func readRow(row []string, cols layout) client.CreateParams {
	return client.CreateParams{
		Nome:             cell(row, cols.nome),
		Contato:          cell(row, cols.contato),
		NomeResponsavel:  cell(row, cols.responsavel),
		TelefoneWhatsapp: isTruthy(cell(row, cols.whatsapp)),
		Logradouro:       cell(row, cols.logradouro),
		Quadra:           cell(row, cols.quadra),
		Lote:             cell(row, cols.lote),
		Bairro:           cell(row, cols.bairro),
		CEP:              cell(row, cols.cep),
		PontoReferencia:  cell(row, cols.pontoReferencia),
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "sim", "s", "true", "1", "x":
		return true
	}

	return false
}
