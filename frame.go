// Package gridview translates tabular data into the payload
// consumed by client side grid widgets: a column schema with
// display type tags, row records serialized as deterministic JSON
// with controllable float precision, and widget display options
// merged over a fixed default table.
//
// The data model is the Frame: named, typed columns with an
// optional single or multi-level Index labeling the rows.
//
// Example usage:
//
//	frame, err := gridview.NewFrame("Prices", gridview.Index{},
//	    gridview.NewColumn("Item", "Apple", "Pear"),
//	    gridview.NewColumn("Price", 1.25, 0.99),
//	)
//	normalized, err := gridview.NormalizeIndex(frame)
//	schema := gridview.ClassifyColumns(normalized)
//	records, err := gridview.MarshalRecords(ctx, normalized, 2)
package gridview

import (
	"fmt"
	"reflect"
	"slices"
)

var (
	_ View            = new(Frame)
	_ ReflectCellView = new(Frame)
)

// Column is a named sequence of values sharing one native element type.
type Column struct {
	// Name is used as field name of the column.
	Name string
	// Type is the native element type of the column values.
	// If nil, the type is derived from the first non nil value.
	Type reflect.Type
	// Values holds one value per row, nil for missing values.
	Values []any
}

// NewColumn returns a Column with the element type T
// and the passed values.
func NewColumn[T any](name string, values ...T) Column {
	col := Column{
		Name:   name,
		Type:   reflect.TypeFor[T](),
		Values: make([]any, len(values)),
	}
	for i, v := range values {
		col.Values[i] = v
	}
	return col
}

// ElemType returns the native element type of the column.
func (c *Column) ElemType() reflect.Type {
	if c.Type != nil {
		return c.Type
	}
	for _, v := range c.Values {
		if v != nil {
			return reflect.TypeOf(v)
		}
	}
	return nil
}

func (c Column) clone() Column {
	c.Values = slices.Clone(c.Values)
	return c
}

// Index labels the rows of a Frame.
// An Index without levels is the implicit range index 0..n-1,
// one level is a single index, more than one level a multi-level index.
type Index struct {
	Levels []Column
}

// SingleIndex returns an Index with one level.
func SingleIndex(level Column) Index {
	return Index{Levels: []Column{level}}
}

// MultiIndex returns an Index with the passed levels
// in outer to inner order.
func MultiIndex(levels ...Column) Index {
	return Index{Levels: levels}
}

// IsMulti returns true if the index has more than one level.
func (idx Index) IsMulti() bool { return len(idx.Levels) > 1 }

// IsRange returns true for the implicit range index.
func (idx Index) IsRange() bool { return len(idx.Levels) == 0 }

func (idx Index) clone() Index {
	if idx.Levels == nil {
		return idx
	}
	levels := make([]Column, len(idx.Levels))
	for i, level := range idx.Levels {
		levels[i] = level.clone()
	}
	return Index{Levels: levels}
}

// Frame is an in-memory table of typed columns with a row Index.
// It implements View and ReflectCellView.
type Frame struct {
	Tit   string
	Cols  []Column
	Index Index
}

// NewFrame returns a validated Frame.
func NewFrame(title string, index Index, cols ...Column) (*Frame, error) {
	f := &Frame{Tit: title, Cols: cols, Index: index}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that all columns and index levels
// have the same number of values.
func (f *Frame) Validate() error {
	numRows := f.NumRows()
	for _, col := range f.Cols {
		if len(col.Values) != numRows {
			return fmt.Errorf("%w: column %q has %d values, expected %d", ErrRaggedColumns, col.Name, len(col.Values), numRows)
		}
	}
	for i, level := range f.Index.Levels {
		if len(level.Values) != numRows {
			return fmt.Errorf("%w: index level %d has %d values, expected %d", ErrRaggedColumns, i, len(level.Values), numRows)
		}
	}
	return nil
}

// Clone returns a copy of the frame that shares no
// column or value slices with the original.
func (f *Frame) Clone() *Frame {
	c := &Frame{Tit: f.Tit, Index: f.Index.clone()}
	if f.Cols != nil {
		c.Cols = make([]Column, len(f.Cols))
		for i, col := range f.Cols {
			c.Cols[i] = col.clone()
		}
	}
	return c
}

// Title returns the title of the frame.
func (f *Frame) Title() string { return f.Tit }

// Columns returns the column names.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.Cols))
	for i := range f.Cols {
		names[i] = f.Cols[i].Name
	}
	return names
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.Cols) > 0 {
		return len(f.Cols[0].Values)
	}
	if len(f.Index.Levels) > 0 {
		return len(f.Index.Levels[0].Values)
	}
	return 0
}

func (f *Frame) Cell(row, col int) any {
	if row < 0 || col < 0 || col >= len(f.Cols) || row >= len(f.Cols[col].Values) {
		return nil
	}
	return f.Cols[col].Values[row]
}

func (f *Frame) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(f.Cell(row, col))
}

func (f *Frame) ColumnType(col int) reflect.Type {
	if col < 0 || col >= len(f.Cols) {
		return nil
	}
	return f.Cols[col].ElemType()
}

// ColumnIndex returns the index of the column with the passed name or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i := range f.Cols {
		if f.Cols[i].Name == name {
			return i
		}
	}
	return -1
}

// WithIndex returns a copy of the frame with the named columns
// moved into the index levels in the passed order,
// replacing the current index.
// An error wrapping ErrColumnNotFound is returned
// for names that are not columns of the frame.
func (f *Frame) WithIndex(names ...string) (*Frame, error) {
	c := f.Clone()
	levels := make([]Column, 0, len(names))
	for _, name := range names {
		i := c.ColumnIndex(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		levels = append(levels, c.Cols[i])
		c.Cols = slices.Delete(c.Cols, i, i+1)
	}
	c.Index = Index{Levels: levels}
	return c, nil
}
