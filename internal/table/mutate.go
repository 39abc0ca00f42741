package table

import (
	"fmt"
	"strings"
)

// ColumnSpec describes a column for AddColumn and InsertColumn.
// Exactly one of Data or Default must be provided: Data gives the
// cells outright, while Default is a single value broadcast to every
// existing row. Label is required when the table is labeled and
// ignored (with a warning) when it is not.
type ColumnSpec struct {
	Data    []any
	Default any
	Label   string
}

// AddColumn appends a column described by spec.
func (t *Table) AddColumn(spec ColumnSpec) error {
	return t.InsertColumn(len(t.columns), spec)
}

// InsertColumn inserts a column described by spec at the given
// position. On any validation failure the table is unchanged.
func (t *Table) InsertColumn(index int, spec ColumnSpec) error {
	if spec.Data == nil && spec.Default == nil {
		return ErrMissingColumnData
	}
	if spec.Data != nil && spec.Default != nil {
		Warnf("default ignored when column data is provided")
	}

	labeled := t.labels != nil
	if labeled && spec.Label == "" {
		return ErrLabelRequired
	}
	if !labeled && spec.Label != "" {
		Warnf("label %q ignored: table has no labels", spec.Label)
	}

	if index < 0 || index > len(t.columns) {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(t.columns))
	}

	var column []string
	if spec.Data != nil {
		column = Stringify(spec.Data)
		if len(t.columns) > 0 && len(column) != t.height() {
			return fmt.Errorf("%w: got %d cells, want %d",
				ErrColumnLengthMismatch, len(column), t.height())
		}
	} else {
		cell := stringifyCell(spec.Default)
		column = make([]string, t.height())
		for i := range column {
			column[i] = cell
		}
	}

	t.columns = append(t.columns, nil)
	copy(t.columns[index+1:], t.columns[index:])
	t.columns[index] = column
	if labeled {
		t.labels = append(t.labels, "")
		copy(t.labels[index+1:], t.labels[index:])
		t.labels[index] = strings.TrimSpace(spec.Label)
	}
	t.markDirty()
	return nil
}

// AddRow appends a row of cell values. On an empty table the row
// defines the columns: one column per cell, each of height one.
func (t *Table) AddRow(row ...any) error {
	return t.InsertRow(t.height(), row...)
}

// InsertRow inserts a row at the given position, shifting later rows
// down. On any validation failure the table is unchanged.
func (t *Table) InsertRow(index int, row ...any) error {
	cells := Stringify(row)

	if len(t.columns) == 0 {
		if index != 0 {
			return fmt.Errorf("%w: row %d of 0", ErrIndexOutOfRange, index)
		}
		if t.labels != nil && len(t.labels) != len(cells) {
			return fmt.Errorf("%w: %d labels for a %d-cell row",
				ErrLabelCountMismatch, len(t.labels), len(cells))
		}
		Warnf("no columns: expanding table to fit row")
		t.columns = make([][]string, len(cells))
		for i, cell := range cells {
			t.columns[i] = []string{cell}
		}
		t.markDirty()
		return nil
	}

	if len(cells) != len(t.columns) {
		return fmt.Errorf("%w: got %d cells, want %d",
			ErrRowLengthMismatch, len(cells), len(t.columns))
	}
	if index < 0 || index > t.height() {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, t.height())
	}

	for i, cell := range cells {
		column := append(t.columns[i], "")
		copy(column[index+1:], column[index:])
		column[index] = cell
		t.columns[i] = column
	}
	t.markDirty()
	return nil
}

// RemoveColumn removes the column at the given position, along with
// its label if the table is labeled.
func (t *Table) RemoveColumn(index int) error {
	if index < 0 || index >= len(t.columns) {
		return fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, index, len(t.columns))
	}
	t.columns = append(t.columns[:index], t.columns[index+1:]...)
	if t.labels != nil {
		t.labels = append(t.labels[:index], t.labels[index+1:]...)
	}
	t.markDirty()
	return nil
}

// RemoveColumnByLabel removes the column whose label matches.
func (t *Table) RemoveColumnByLabel(label string) error {
	index, err := t.labelIndex(label)
	if err != nil {
		return err
	}
	return t.RemoveColumn(index)
}

// RemoveRow removes the row at the given position from every column.
func (t *Table) RemoveRow(index int) error {
	if index < 0 || index >= t.height() {
		return fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, index, t.height())
	}
	for i, column := range t.columns {
		t.columns[i] = append(column[:index], column[index+1:]...)
	}
	t.markDirty()
	return nil
}

// Relabel replaces the label old with new.
func (t *Table) Relabel(old, new string) error {
	index, err := t.labelIndex(old)
	if err != nil {
		return err
	}
	t.labels[index] = strings.TrimSpace(new)
	t.markDirty()
	return nil
}

// SetCell normalizes value and writes it at (row, col).
func (t *Table) SetCell(row, col int, value any) error {
	if col < 0 || col >= len(t.columns) || row < 0 || row >= t.height() {
		return fmt.Errorf("%w: cell (%d, %d) in a %dx%d table",
			ErrIndexOutOfRange, row, col, t.height(), len(t.columns))
	}
	t.columns[col][row] = stringifyCell(value)
	t.markDirty()
	return nil
}
