// Package table renders tabular data as fixed-width, box-drawn text.
// A Table stores its cells column by column, supports structural
// mutation (adding and removing rows and columns, relabeling, cell
// writes), and caches its rendering so that repeated display calls
// between mutations do no layout work. Construct a table with New,
// mutate it with the Add/Remove/Set methods, and read it back with
// String, Select, or the positional accessors.
package table

import (
	"fmt"
	"os"
	"strings"
)

// Warnf receives advisory messages for conditions that do not abort an
// operation, such as a label supplied to an unlabeled table. It
// defaults to writing a line to stderr; tests and embedding programs
// may replace it.
var Warnf = func(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
}

// Config carries the presentation settings of a table. Most callers
// start from DefaultConfig and override individual fields.
type Config struct {
	// Labels names the columns. nil means the table is unlabeled; a
	// non-nil value must have one entry per column.
	Labels []string

	// Centered selects center alignment within each column's computed
	// width instead of left justification.
	Centered bool

	// Padding is the number of spaces inserted on each side of a
	// cell's content. Must be non-negative.
	Padding int

	// Style names the box-drawing glyph set. Empty means "light". See
	// StyleNames for the registered names.
	Style string
}

// DefaultConfig returns the settings used when no configuration is
// given: unlabeled, left-justified, one space of padding, light
// box-drawing glyphs.
func DefaultConfig() Config {
	return Config{Padding: 1, Style: "light"}
}

// Table holds tabular data column by column and renders it on demand.
// All columns have the same height at every point observable by the
// caller; every mutating method either upholds that invariant or
// fails without changing the table. A Table is not safe for
// concurrent use.
type Table struct {
	columns  [][]string
	labels   []string // nil when unlabeled
	style    string
	centered bool
	padding  int

	dirty    bool
	rendered string
	rebuilds int
}

// New constructs a table from rows of cell values. Each row must have
// the same length; rows are normalized with Stringify and transposed
// into columns. When cfg.Labels is non-nil and rows are empty, the
// labels define the column count (a header-only table).
func New(rows [][]any, cfg Config) (*Table, error) {
	if cfg.Style == "" {
		cfg.Style = "light"
	}
	if _, err := StyleNamed(cfg.Style); err != nil {
		return nil, err
	}
	if cfg.Padding < 0 {
		return nil, fmt.Errorf("padding must be non-negative, got %d", cfg.Padding)
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		normalized[i] = Stringify(row)
	}
	columns, err := StrictZip(normalized...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRowLengthMismatch, err)
	}

	if len(columns) == 0 && len(cfg.Labels) > 0 {
		// Header-only table: the labels define the shape.
		columns = make([][]string, len(cfg.Labels))
	}

	t := &Table{
		columns:  columns,
		style:    cfg.Style,
		centered: cfg.Centered,
		padding:  cfg.Padding,
		dirty:    true,
	}
	if cfg.Labels != nil {
		if err := t.SetLabels(cfg.Labels); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Make renders rows under headers using the default configuration. It
// is a convenience for one-shot formatting when no further mutation or
// selection is needed.
func Make(rows [][]any, headers []string) (string, error) {
	cfg := DefaultConfig()
	cfg.Labels = headers
	t, err := New(rows, cfg)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// NumRows returns the table's row count, excluding any label row.
func (t *Table) NumRows() int {
	return t.height()
}

// NumColumns returns the table's column count.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Labels returns a copy of the column labels, or nil for an unlabeled
// table.
func (t *Table) Labels() []string {
	if t.labels == nil {
		return nil
	}
	return append([]string(nil), t.labels...)
}

// StyleName returns the name of the table's box-drawing style.
func (t *Table) StyleName() string {
	return t.style
}

// Centered reports whether cells are center-aligned.
func (t *Table) Centered() bool {
	return t.centered
}

// Padding returns the number of spaces on each side of cell content.
func (t *Table) Padding() int {
	return t.padding
}

// height returns the shared column height. All columns have the same
// height by invariant, so the first one suffices.
func (t *Table) height() int {
	if len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0])
}

func (t *Table) markDirty() {
	t.dirty = true
}

// String returns the rendered table. The text is cached: rendering
// twice without an intervening mutation returns the cached block
// without recomputing the layout.
func (t *Table) String() string {
	if t.dirty {
		t.rendered = t.build()
		t.rebuilds++
		t.dirty = false
	}
	return t.rendered
}

// Show writes the rendered table and a trailing newline to stdout.
func (t *Table) Show() {
	fmt.Println(t.String())
}

func (t *Table) labelIndex(label string) (int, error) {
	if t.labels == nil {
		return 0, ErrNoLabels
	}
	for i, l := range t.labels {
		if l == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

// SetLabels replaces the column labels. A nil value makes the table
// unlabeled; a non-nil value must have one entry per column. Labels
// are whitespace-trimmed like cell values.
func (t *Table) SetLabels(labels []string) error {
	if labels == nil {
		t.labels = nil
		t.markDirty()
		return nil
	}
	if len(labels) != len(t.columns) {
		return fmt.Errorf("%w: %d labels for %d columns",
			ErrLabelCountMismatch, len(labels), len(t.columns))
	}
	trimmed := make([]string, len(labels))
	for i, label := range labels {
		trimmed[i] = strings.TrimSpace(label)
	}
	t.labels = trimmed
	t.markDirty()
	return nil
}

// SetStyle switches the box-drawing glyph set.
func (t *Table) SetStyle(name string) error {
	if _, err := StyleNamed(name); err != nil {
		return err
	}
	t.style = name
	t.markDirty()
	return nil
}

// SetCentered switches between centered and left-justified cells.
func (t *Table) SetCentered(centered bool) {
	t.centered = centered
	t.markDirty()
}

// SetPadding changes the number of spaces on each side of cell
// content. Zero is allowed and inserts no spaces at all.
func (t *Table) SetPadding(padding int) error {
	if padding < 0 {
		return fmt.Errorf("padding must be non-negative, got %d", padding)
	}
	t.padding = padding
	t.markDirty()
	return nil
}
