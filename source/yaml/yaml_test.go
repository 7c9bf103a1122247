package yaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	eng "github.com/reoring/obofoundry/internal/engine"
	yamlsrc "github.com/reoring/obofoundry/source/yaml"
)

func decode(t *testing.T, doc string) any {
	t.Helper()
	v, err := eng.DecodeAnyFromSource(yamlsrc.NewBytes([]byte(doc)))
	require.NoError(t, err)
	return v
}

func TestScalars(t *testing.T) {
	v := decode(t, `
s: text
quoted: "1"
i: 0x10
f: 1.5
b: yes
t: true
n: ~
date: 2010-02-03
`).(map[string]any)
	assert.Equal(t, "text", v["s"])
	assert.Equal(t, "1", v["quoted"])
	assert.Equal(t, eng.Number("16"), v["i"])
	assert.Equal(t, eng.Number("1.5"), v["f"])
	assert.Equal(t, "yes", v["b"])
	assert.Equal(t, true, v["t"])
	assert.Nil(t, v["n"])
	assert.Equal(t, "2010-02-03", v["date"])
}

func TestAliases(t *testing.T) {
	v := decode(t, `
base: &lic
  label: CC0
copy: *lic
`).(map[string]any)
	assert.Equal(t, v["base"], v["copy"])
}

func TestEmptyDocument(t *testing.T) {
	assert.Nil(t, decode(t, ""))
}

func TestMultipleDocuments(t *testing.T) {
	_, err := eng.DecodeAnyFromSource(yamlsrc.NewBytes([]byte("a: 1\n---\nb: 2\n")))
	assert.ErrorIs(t, err, yamlsrc.ErrMultipleDocuments)
}

func TestNonScalarKey(t *testing.T) {
	_, err := eng.DecodeAnyFromSource(yamlsrc.NewBytes([]byte("? [a, b]\n: 1\n")))
	assert.Error(t, err)
}

func TestNode(t *testing.T) {
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("ontologies: [{id: go}]\n"), &n))
	v, err := eng.DecodeAnyFromSource(yamlsrc.NewNode(&n))
	require.NoError(t, err)
	onts := v.(map[string]any)["ontologies"].([]any)
	assert.Equal(t, map[string]any{"id": "go"}, onts[0])
}
