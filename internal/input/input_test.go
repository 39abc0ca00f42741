package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	doc, err := Read(strings.NewReader("a,b\nc,d\n"), FormatCSV)
	require.NoError(t, err)

	assert.Nil(t, doc.Labels)
	assert.Equal(t, [][]any{{"a", "b"}, {"c", "d"}}, doc.Rows)
}

func TestReadJSONArray(t *testing.T) {
	doc, err := Read(strings.NewReader(`[["a", 1], ["b", 2]]`), FormatJSON)
	require.NoError(t, err)

	assert.Nil(t, doc.Labels)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "a", doc.Rows[0][0])
}

func TestReadJSONDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(
		`{"labels": ["x", "y"], "rows": [["a", "b"]]}`), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, doc.Labels)
	assert.Equal(t, [][]any{{"a", "b"}}, doc.Rows)
}

func TestReadYAMLDocument(t *testing.T) {
	source := `
labels: [Name, Phone]
rows:
  - [John Smith, 123-4567]
  - [Mary Sue, 555-2451]
`
	doc, err := Read(strings.NewReader(source), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Phone"}, doc.Labels)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Mary Sue", doc.Rows[1][0])
}

func TestReadYAMLBareRows(t *testing.T) {
	doc, err := Read(strings.NewReader("- [a, b]\n- [c, d]\n"), FormatYAML)
	require.NoError(t, err)

	assert.Nil(t, doc.Labels)
	assert.Len(t, doc.Rows, 2)
}

func TestReadTOML(t *testing.T) {
	source := `
labels = ["Name", "Phone"]
rows = [["John Smith", "123-4567"], ["Mary Sue", "555-2451"]]
`
	doc, err := Read(strings.NewReader(source), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Phone"}, doc.Labels)
	assert.Equal(t, "555-2451", doc.Rows[1][1])
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"csv": FormatCSV, "json": FormatJSON,
		"yaml": FormatYAML, "yml": FormatYAML, "toml": FormatTOML,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("data.json"))
	assert.Equal(t, FormatYAML, DetectFormat("data.yml"))
	assert.Equal(t, FormatTOML, DetectFormat("data.toml"))
	assert.Equal(t, FormatCSV, DetectFormat("data.csv"))
	assert.Equal(t, FormatCSV, DetectFormat("no-extension"))
}
