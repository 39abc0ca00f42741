package table

import "fmt"

// Key selects cells from a table. The concrete key types cover every
// supported shape: a single row, a single column (by position or
// label), a single cell, and multi-selections that produce a derived
// table. The interface is sealed; Select's type switch is exhaustive
// over the types in this package.
type Key interface {
	isKey()
}

// Row selects one row across every column.
type Row int

// Column selects one column by position.
type Column int

// Label selects one column by its label.
type Label string

// Rows selects a derived table holding only the listed rows.
type Rows []int

// Columns selects a derived table holding only the listed columns.
type Columns []int

// Labels selects a derived table holding only the columns with the
// listed labels.
type Labels []string

// Cell selects a single cell.
type Cell struct {
	Row, Col int
}

func (Row) isKey()     {}
func (Column) isKey()  {}
func (Label) isKey()   {}
func (Rows) isKey()    {}
func (Columns) isKey() {}
func (Labels) isKey()  {}
func (Cell) isKey()    {}

// Select resolves key against the table. The result is a string for a
// Cell key, a []string for Row, Column, and Label keys, and a new
// independent *Table for Rows, Columns, and Labels keys. Returned
// slices and derived tables never alias the table's own storage.
func (t *Table) Select(key Key) (any, error) {
	switch k := key.(type) {
	case Row:
		return t.RowAt(int(k))
	case Column:
		return t.ColumnAt(int(k))
	case Label:
		index, err := t.labelIndex(string(k))
		if err != nil {
			return nil, err
		}
		return t.ColumnAt(index)
	case Rows:
		return t.selectRows(k)
	case Columns:
		return t.selectColumns(k)
	case Labels:
		positions := make([]int, len(k))
		for i, label := range k {
			index, err := t.labelIndex(label)
			if err != nil {
				return nil, err
			}
			positions[i] = index
		}
		return t.selectColumns(positions)
	case Cell:
		return t.CellAt(k.Row, k.Col)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidKey, key)
	}
}

// Set writes value through key. Only a Cell key addresses a single
// writable location; every other key shape is rejected.
func (t *Table) Set(key Key, value any) error {
	cell, ok := key.(Cell)
	if !ok {
		return fmt.Errorf("%w: %T is not assignable", ErrInvalidKey, key)
	}
	return t.SetCell(cell.Row, cell.Col, value)
}

// CellAt returns the cell at (row, col).
func (t *Table) CellAt(row, col int) (string, error) {
	if col < 0 || col >= len(t.columns) || row < 0 || row >= t.height() {
		return "", fmt.Errorf("%w: cell (%d, %d) in a %dx%d table",
			ErrIndexOutOfRange, row, col, t.height(), len(t.columns))
	}
	return t.columns[col][row], nil
}

// RowAt returns the row at the given position, one cell per column in
// column order.
func (t *Table) RowAt(index int) ([]string, error) {
	if index < 0 || index >= t.height() {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, t.height())
	}
	row := make([]string, len(t.columns))
	for i, column := range t.columns {
		row[i] = column[index]
	}
	return row, nil
}

// ColumnAt returns a copy of the column at the given position.
func (t *Table) ColumnAt(index int) ([]string, error) {
	if index < 0 || index >= len(t.columns) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(t.columns))
	}
	return append([]string(nil), t.columns[index]...), nil
}

// ColumnByLabel returns a copy of the column with the given label.
func (t *Table) ColumnByLabel(label string) ([]string, error) {
	index, err := t.labelIndex(label)
	if err != nil {
		return nil, err
	}
	return t.ColumnAt(index)
}

// selectColumns builds a derived table from the listed column
// positions, carrying over labels and presentation settings. The
// derived table owns its data outright.
func (t *Table) selectColumns(positions []int) (*Table, error) {
	columns := make([][]string, len(positions))
	var labels []string
	if t.labels != nil {
		labels = make([]string, len(positions))
	}
	for i, pos := range positions {
		if pos < 0 || pos >= len(t.columns) {
			return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, pos, len(t.columns))
		}
		columns[i] = append([]string(nil), t.columns[pos]...)
		if labels != nil {
			labels[i] = t.labels[pos]
		}
	}
	return t.derive(columns, labels), nil
}

// selectRows builds a derived table from the listed row positions,
// keeping every column and the table's labels and settings.
func (t *Table) selectRows(positions []int) (*Table, error) {
	for _, pos := range positions {
		if pos < 0 || pos >= t.height() {
			return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, pos, t.height())
		}
	}
	columns := make([][]string, len(t.columns))
	for i, column := range t.columns {
		selected := make([]string, len(positions))
		for j, pos := range positions {
			selected[j] = column[pos]
		}
		columns[i] = selected
	}
	var labels []string
	if t.labels != nil {
		labels = append([]string(nil), t.labels...)
	}
	return t.derive(columns, labels), nil
}

func (t *Table) derive(columns [][]string, labels []string) *Table {
	return &Table{
		columns:  columns,
		labels:   labels,
		style:    t.style,
		centered: t.centered,
		padding:  t.padding,
		dirty:    true,
	}
}
