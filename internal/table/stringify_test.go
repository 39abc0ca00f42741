package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	got := Stringify([]any{"  spaced  ", 42, 3.5, true, nil})
	assert.Equal(t, []string{"spaced", "42", "3.5", "true", "<nil>"}, got)
}

func TestStrictZip(t *testing.T) {
	got, err := StrictZip([]string{"a", "b"}, []string{"1", "2"}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "1", "x"}, {"b", "2", "y"}}, got)
}

func TestStrictZipLengthMismatch(t *testing.T) {
	_, err := StrictZip([]string{"1", "2"}, []string{"1", "2", "3"})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestStrictZipNoArguments(t *testing.T) {
	got, err := StrictZip()
	require.NoError(t, err)
	assert.Empty(t, got)
}
