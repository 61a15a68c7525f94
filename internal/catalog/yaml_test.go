package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xelogen/internal/ir"
)

const sampleDoc = `
nodes:
  - name: Wobble<Float>
    inputs:
      - {name: value, type: Float}
    outputs:
      - {name: "*", type: Float}
  - name: FloatInput
    outputs:
      - {name: "*", type: Float}
    content: Float
`

func TestLoadBytes_RegistersSpecs(t *testing.T) {
	c := Builtin()
	require.NoError(t, c.LoadBytes([]byte(sampleDoc)))

	spec, ok := c.SpecOf("Wobble<Float>")
	require.True(t, ok)
	require.Len(t, spec.Inputs, 1)
	assert.Equal(t, ir.DatatypeFloat, spec.Inputs[0].Type)

	spec, ok = c.SpecOf("FloatInput")
	require.True(t, ok)
	assert.Equal(t, ir.DatatypeFloat, spec.ContentType)
	assert.True(t, spec.HasContent())
}

func TestLoadBytes_UnknownDatatypeRejected(t *testing.T) {
	c := New()
	err := c.LoadBytes([]byte(`
nodes:
  - name: Bad
    outputs:
      - {name: "*", type: Quaternion}
`))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestLoadBytes_UnknownFieldRejected(t *testing.T) {
	c := New()
	err := c.LoadBytes([]byte(`
nodes:
  - name: Bad
    color: red
`))
	assert.Error(t, err)
}

func TestLoadBytes_DuplicateOfBuiltinRejected(t *testing.T) {
	c := Builtin()
	err := c.LoadBytes([]byte(`
nodes:
  - name: Pulse
    outputs:
      - {name: "*", type: Impulse}
`))
	assert.ErrorIs(t, err, ErrDuplicateSpec)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	c := Builtin()
	require.NoError(t, c.LoadFile(path))
	_, ok := c.SpecOf("Wobble<Float>")
	assert.True(t, ok)

	assert.Error(t, c.LoadFile(filepath.Join(dir, "missing.yaml")))
}
