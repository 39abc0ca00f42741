package table

import (
	"fmt"
	"strings"
)

// Stringify renders each item via its natural text form and trims
// surrounding whitespace. Cell values are stored in this normalized
// form only.
func Stringify(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = stringifyCell(item)
	}
	return out
}

func stringifyCell(v any) string {
	return strings.TrimSpace(fmt.Sprint(v))
}

// StrictZip transposes its argument sequences element-wise. Unlike a
// plain zip it returns ErrLengthMismatch instead of silently
// truncating when the sequences differ in length.
func StrictZip(seqs ...[]string) ([][]string, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	n := len(seqs[0])
	for _, seq := range seqs[1:] {
		if len(seq) != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(seq))
		}
	}
	out := make([][]string, n)
	for i := range out {
		tuple := make([]string, len(seqs))
		for j, seq := range seqs {
			tuple[j] = seq[i]
		}
		out[i] = tuple
	}
	return out, nil
}
