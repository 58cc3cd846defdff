package gridview

import "reflect"

// View is the read-only tabular interface consumed by the
// serializer and the type classifier.
type View interface {
	Title() string
	Columns() []string
	NumRows() int
	// Cell returns the value at row and col
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

// ReflectCellView extends View with reflection access
// to cells and the native element type of columns.
type ReflectCellView interface {
	View

	// ReflectCell returns the reflect.Value of a cell
	// or an invalid reflect.Value if the indices are out of bounds.
	ReflectCell(row, col int) reflect.Value

	// ColumnType returns the native element type of a column
	// or nil if the type is unknown.
	ColumnType(col int) reflect.Type
}

// AsReflectCellView returns the passed view as ReflectCellView
// if it implements the interface, or wraps it so that
// cell values are reflected and column types are derived
// from the first non nil value of every column.
func AsReflectCellView(view View) ReflectCellView {
	if rv, ok := view.(ReflectCellView); ok {
		return rv
	}
	return viewReflector{view}
}

type viewReflector struct {
	View
}

func (v viewReflector) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(v.Cell(row, col))
}

func (v viewReflector) ColumnType(col int) reflect.Type {
	for row, n := 0, v.NumRows(); row < n; row++ {
		if val := v.Cell(row, col); val != nil {
			return reflect.TypeOf(val)
		}
	}
	return nil
}
