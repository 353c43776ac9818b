package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caipirao/caipirao/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with Portuguese characters should pass through unchanged.
	input := "nome;contato;bairro\nJoão da Silva;62999990000;Setor Sul\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// ISO-8859-1 encoded "João;São Paulo\n" (ã = 0xE3).
	latin1Bytes := []byte{
		'J', 'o', 0xE3, 'o', ';',
		'S', 0xE3, 'o', ' ', 'P', 'a', 'u', 'l', 'o', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "João;São Paulo\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// The 3-byte UTF-8 BOM must be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("nome;contato\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "nome;contato\n", string(got))
}
