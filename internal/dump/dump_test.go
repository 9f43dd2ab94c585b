package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomdoesdev/lexkit/internal/lexer"
)

func TestDumpJSON(t *testing.T) {
	l := lexer.New()
	require.NoError(t, l.Run("x = 42"))

	output, err := New().Dump(l.Tokens())
	require.NoError(t, err)

	assert.Contains(t, output, `"kind": "identifier"`)
	assert.Contains(t, output, `"kind": "="`)
	assert.Contains(t, output, `"kind": "integer"`)
	assert.Contains(t, output, `"value": "42"`)
	assert.Contains(t, output, `"line": 1`)
}

func TestDumpYAML(t *testing.T) {
	l := lexer.New()
	require.NoError(t, l.Run("x = 42"))

	d := NewWithFormat(FormatYAML)
	output, err := d.Dump(l.Tokens())
	require.NoError(t, err)

	assert.Contains(t, output, "kind: identifier")
	assert.Contains(t, output, "value: \"42\"")
}

func TestDumpUnsupportedFormat(t *testing.T) {
	d := New()
	d.SetFormat(Format("toml"))

	_, err := d.Dump(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
