package table

// Rebuilds reports how many times the layout has been recomputed. It
// exists so tests can observe the rebuild cache.
func (t *Table) Rebuilds() int {
	return t.rebuilds
}

// captureWarnings redirects Warnf into a slice for the duration of a
// test. Used via the helper in table_test.go.
func swapWarnf(f func(string, ...any)) (restore func()) {
	orig := Warnf
	Warnf = f
	return func() { Warnf = orig }
}
