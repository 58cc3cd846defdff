package gridview

import (
	"fmt"
	"slices"
	"strconv"
)

// DefaultIndexName is the column name used
// for an unnamed single or implicit range index.
const DefaultIndexName = "index"

// NormalizeIndex returns a copy of the frame with its row index
// moved into leading columns, leaving the copy with an implicit range index.
//
// Every level of a multi-level index becomes a column in level order,
// unnamed levels are named "level_<i>".
// A single or implicit range index becomes one leading column
// named by the index name. An unnamed single index is named
// DefaultIndexName, or "level_0" if a column with that name already exists.
//
// Duplicate column names, and index levels named like
// a column or another level, return an error wrapping ErrDuplicateColumn.
// The passed frame is never modified.
func NormalizeIndex(frame *Frame) (*Frame, error) {
	if err := frame.Validate(); err != nil {
		return nil, err
	}
	for i := range frame.Cols {
		if countNames(frame.Cols, frame.Cols[i].Name) > 1 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, frame.Cols[i].Name)
		}
	}
	f := frame.Clone()

	var levels []Column
	switch {
	case f.Index.IsMulti():
		levels = f.Index.Levels
		for i := range levels {
			if levels[i].Name == "" {
				levels[i].Name = levelName(i)
			}
		}
	case f.Index.IsRange():
		levels = []Column{rangeIndex(f.NumRows())}
	default:
		levels = f.Index.Levels
	}
	if !f.Index.IsMulti() && levels[0].Name == "" {
		levels[0].Name = DefaultIndexName
		if f.ColumnIndex(DefaultIndexName) >= 0 {
			levels[0].Name = levelName(0)
		}
	}

	for _, level := range levels {
		if f.ColumnIndex(level.Name) >= 0 || countNames(levels, level.Name) > 1 {
			return nil, fmt.Errorf("%w: index level %q", ErrDuplicateColumn, level.Name)
		}
	}

	f.Cols = slices.Concat(levels, f.Cols)
	f.Index = Index{}
	return f, nil
}

func levelName(i int) string {
	return "level_" + strconv.Itoa(i)
}

func rangeIndex(numRows int) Column {
	col := Column{Type: typeOfInt64, Values: make([]any, numRows)}
	for i := range numRows {
		col.Values[i] = int64(i)
	}
	return col
}

func countNames(cols []Column, name string) (n int) {
	for i := range cols {
		if cols[i].Name == name {
			n++
		}
	}
	return n
}
