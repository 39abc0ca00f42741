package table

import "errors"

// Errors returned by table operations. They are wrapped with position
// or label context before being returned, so match them with
// errors.Is rather than direct comparison.
var (
	// ErrLengthMismatch is returned by StrictZip when its input
	// sequences do not all have the same length.
	ErrLengthMismatch = errors.New("sequences have inconsistent lengths")

	// ErrRowLengthMismatch is returned when a row's width disagrees
	// with the table's column count.
	ErrRowLengthMismatch = errors.New("row length does not match column count")

	// ErrColumnLengthMismatch is returned when new column data
	// disagrees with the table's row count.
	ErrColumnLengthMismatch = errors.New("column length does not match row count")

	// ErrLabelCountMismatch is returned when the number of labels
	// disagrees with the number of columns.
	ErrLabelCountMismatch = errors.New("labels inconsistent with number of columns")

	// ErrMissingColumnData is returned by AddColumn and InsertColumn
	// when neither cell data nor a default value is provided.
	ErrMissingColumnData = errors.New("need column data or a default value")

	// ErrLabelRequired is returned when a column is added to a labeled
	// table without a label.
	ErrLabelRequired = errors.New("label is required")

	// ErrUnknownLabel is returned when a label is not present in the
	// table.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrNoLabels is returned when a label operation is attempted on
	// an unlabeled table.
	ErrNoLabels = errors.New("table has no labels")

	// ErrUnknownStyle is returned when a style name is not registered.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrIndexOutOfRange is returned for row or column positions
	// outside the table.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidKey is returned by Select and Set for key shapes they
	// cannot resolve.
	ErrInvalidKey = errors.New("invalid key")
)
