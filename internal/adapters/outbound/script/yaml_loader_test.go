package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripinvoice/tripinvoice/internal/adapters/outbound/script"
	"github.com/tripinvoice/tripinvoice/internal/domain"
)

func TestYAMLLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
steps:
  - set: invoiceNumber
    value: INV-7
  - update: first
    field: totalKM
    value: "120"
  - add: true
    ref: second
  - remove: second
`), 0644))

	s, err := script.New().Load(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, domain.EditStep{Set: "invoiceNumber", Value: "INV-7"}, s.Steps[0])
	assert.Equal(t, "totalKM", s.Steps[1].Field)
	assert.True(t, s.Steps[2].Add)
	assert.Equal(t, "second", s.Steps[3].Remove)
}

func TestYAMLLoader_MissingFile(t *testing.T) {
	_, err := script.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading script")
}

func TestParse_Errors(t *testing.T) {
	_, err := script.Parse([]byte(`steps: {{`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing script")

	_, err = script.Parse([]byte(`steps: [{set: colour, value: red}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown invoice field "colour"`)
}
