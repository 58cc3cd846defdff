package gridview

import (
	"fmt"
	"slices"
)

// FrameFromView reads and caches all cells of a View
// as columns of a new Frame with a range index.
// A *Frame source is cloned including its index.
//
// Column types are taken from the view if it implements
// ReflectCellView, else from the first non nil value of every column.
func FrameFromView(view View) (*Frame, error) {
	if f, ok := view.(*Frame); ok {
		return f.Clone(), nil
	}
	rv := AsReflectCellView(view)
	numRows := view.NumRows()
	columns := view.Columns()
	cols := make([]Column, len(columns))
	for col, name := range columns {
		cols[col] = Column{
			Name:   name,
			Type:   rv.ColumnType(col),
			Values: make([]any, numRows),
		}
		for row := range numRows {
			cols[col].Values[row] = view.Cell(row, col)
		}
	}
	return NewFrame(view.Title(), Index{}, cols...)
}

// SelectColumns returns a copy of the frame with only the named
// columns in the passed order. The index is kept.
// An error wrapping ErrColumnNotFound is returned
// for names that are not columns of the frame.
func (f *Frame) SelectColumns(names ...string) (*Frame, error) {
	mapping := make([]int, len(names))
	for i, name := range names {
		mapping[i] = f.ColumnIndex(name)
		if mapping[i] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
	}
	c := f.Clone()
	c.Cols = make([]Column, len(mapping))
	for i, src := range mapping {
		c.Cols[i] = f.Cols[src].clone()
	}
	return c, nil
}

// DropColumns returns a copy of the frame without the named columns.
// Unknown names are ignored.
func (f *Frame) DropColumns(names ...string) *Frame {
	c := f.Clone()
	c.Cols = slices.DeleteFunc(c.Cols, func(col Column) bool {
		return slices.Contains(names, col.Name)
	})
	return c
}
