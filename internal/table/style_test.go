package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleNamed(t *testing.T) {
	light, err := StyleNamed("light")
	require.NoError(t, err)
	assert.Equal(t, '│', light.Vertical)
	assert.Equal(t, '┌', light.TopLeft)
	assert.Equal(t, '┘', light.BottomRight)

	_, err = StyleNamed("triple")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestStyleNames(t *testing.T) {
	names := StyleNames()
	assert.Equal(t, []string{
		"ascii",
		"curved",
		"double",
		"double-horizontal",
		"double-vertical",
		"heavy",
		"light",
	}, names)
}

func TestMustStylePanicsOnMalformedEncoding(t *testing.T) {
	assert.Panics(t, func() { mustStyle("│─") })
}
