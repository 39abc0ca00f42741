package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIsCached(t *testing.T) {
	tbl := contactTable(t)

	first := tbl.String()
	assert.Equal(t, 1, tbl.Rebuilds())

	second := tbl.String()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, tbl.Rebuilds(), "second render must not recompute")

	require.NoError(t, tbl.SetCell(0, 0, "J. Smith"))
	_ = tbl.String()
	assert.Equal(t, 2, tbl.Rebuilds(), "mutation must invalidate the cache")
}

func TestConfigChangeInvalidatesCache(t *testing.T) {
	tbl := contactTable(t)
	_ = tbl.String()

	require.NoError(t, tbl.SetStyle("heavy"))
	assert.Contains(t, tbl.String(), "┏")
	assert.Equal(t, 2, tbl.Rebuilds())

	tbl.SetCentered(true)
	_ = tbl.String()
	assert.Equal(t, 3, tbl.Rebuilds())

	require.NoError(t, tbl.SetPadding(2))
	_ = tbl.String()
	assert.Equal(t, 4, tbl.Rebuilds())
}

func TestRenderAsciiStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = "ascii"
	tbl, err := New([][]any{{"a", "bb"}, {"ccc", "d"}}, cfg)
	require.NoError(t, err)

	want := `+-----+----+
| a   | bb |
| ccc | d  |
+-----+----+`
	assert.Equal(t, want, tbl.String())
}

func TestRenderDoubleStyleWithLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Labels = []string{"X", "Y"}
	cfg.Style = "double"
	tbl, err := New([][]any{{1, 2}}, cfg)
	require.NoError(t, err)

	want := `╔═══╦═══╗
║ X ║ Y ║
╠═══╬═══╣
║ 1 ║ 2 ║
╚═══╩═══╝`
	assert.Equal(t, want, tbl.String())
}

func TestRenderCentered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Centered = true
	tbl, err := New([][]any{{"a"}, {"bbb"}, {"cc"}}, cfg)
	require.NoError(t, err)

	// Odd gaps leave the extra space on the right.
	want := `┌─────┐
│  a  │
│ bbb │
│ cc  │
└─────┘`
	assert.Equal(t, want, tbl.String())
}

func TestRenderZeroPadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = 0
	cfg.Centered = true
	tbl, err := New([][]any{{"a"}, {"bbb"}}, cfg)
	require.NoError(t, err)

	// Zero padding inserts no spaces; centering still applies within
	// the column width.
	want := `┌───┐
│ a │
│bbb│
└───┘`
	assert.Equal(t, want, tbl.String())
}

func TestRenderNoTrailingNewline(t *testing.T) {
	tbl := contactTable(t)
	assert.False(t, strings.HasSuffix(tbl.String(), "\n"))
}

func TestRenderUsesRuneWidths(t *testing.T) {
	tbl, err := New([][]any{{"héllo"}, {"web"}}, DefaultConfig())
	require.NoError(t, err)

	for _, line := range strings.Split(tbl.String(), "\n") {
		assert.Equal(t, 9, len([]rune(line)))
	}
}
