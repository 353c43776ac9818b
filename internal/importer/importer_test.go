package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caipirao/caipirao/internal/importer"
)

func TestService_Parse(t *testing.T) {
	input := strings.Join([]string{
		"PLANILHA DE CLIENTES 2025;;;;",
		";;;;",
		"Nome;Contato;WhatsApp;Bairro;Ponto de Referência",
		"Maria Souza;62999990000;Sim;Centro;Perto da praça",
		"João Lima;62988880000;;Setor Sul;",
		";;;;",
		";62977770000;Sim;;",
	}, "\n")

	got, err := importer.NewService().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Maria Souza", got[0].Nome)
	assert.Equal(t, "62999990000", got[0].Contato)
	assert.True(t, got[0].TelefoneWhatsapp)
	assert.Equal(t, "Centro", got[0].Bairro)
	assert.Equal(t, "Perto da praça", got[0].PontoReferencia)

	assert.Equal(t, "João Lima", got[1].Nome)
	assert.False(t, got[1].TelefoneWhatsapp)
}

func TestService_Parse_HeaderAliases(t *testing.T) {
	input := strings.Join([]string{
		"CLIENTE;TELEFONE;RESPONSAVEL;ENDERECO",
		"Dona Rosa;62911110000;Carlos;Rua 7",
	}, "\n")

	got, err := importer.NewService().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Dona Rosa", got[0].Nome)
	assert.Equal(t, "62911110000", got[0].Contato)
	assert.Equal(t, "Carlos", got[0].NomeResponsavel)
	assert.Equal(t, "Rua 7", got[0].Logradouro)
}

func TestService_Parse_Latin1(t *testing.T) {
	// "João;São Paulo" as exported by Excel in Windows-1252.
	header := []byte("Nome;Contato\n")
	row := []byte{'J', 'o', 0xE3, 'o', ';', '6', '2', '9', '\n'}

	input := append(header, row...)

	got, err := importer.NewService().Parse(strings.NewReader(string(input)))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "João", got[0].Nome)
}

func TestService_Parse_NoHeader(t *testing.T) {
	input := "só um título\noutra linha solta\n"

	_, err := importer.NewService().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
