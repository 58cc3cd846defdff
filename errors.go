package gridview

import "errors"

var (
	// ErrInvalidPrecision is returned for a precision
	// that is not a non-negative integer.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrInvalidOptions is returned for display options
	// that are not a mapping from names to values.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrDuplicateColumn is returned for frames with duplicate column names
	// and when index normalization would insert a column
	// with a name that already exists.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrRaggedColumns is returned for frames with
	// columns or index levels of different lengths.
	ErrRaggedColumns = errors.New("ragged columns")

	// ErrColumnNotFound is returned for unknown column names.
	ErrColumnNotFound = errors.New("column not found")
)
