package gridview

import (
	"fmt"
	"reflect"
	"time"
)

// FrameFromStrings returns a Frame with typed columns
// from a header and rows of strings as read from text sources.
//
// The type of every column is inferred from its non nil strings
// by trying in order: int64, float64, bool, time.Time, time.Duration.
// If none of these parse every value, the column type is string.
// Strings matched by parser.IsNil become nil values.
// A nil parser is replaced by NewStringParser().
//
// Rows shorter than the header are padded with nil values,
// rows longer than the header return an error wrapping ErrRaggedColumns.
func FrameFromStrings(title string, header []string, rows [][]string, parser *StringParser) (*Frame, error) {
	if parser == nil {
		parser = NewStringParser()
	}
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
	}
	for i, row := range rows {
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d values, header has %d columns", ErrRaggedColumns, i, len(row), len(header))
		}
	}

	cols := make([]Column, len(header))
	for col, name := range header {
		cells := make([]*string, len(rows))
		for row := range rows {
			if col < len(rows[row]) && !parser.IsNil(rows[row][col]) {
				cells[row] = &rows[row][col]
			}
		}
		cols[col] = inferColumn(name, cells, parser)
	}
	return NewFrame(title, Index{}, cols...)
}

func inferColumn(name string, cells []*string, parser *StringParser) Column {
	for _, conv := range columnConverters(parser) {
		if col, ok := conv.convert(name, cells); ok {
			return col
		}
	}
	col := Column{Name: name, Type: reflect.TypeFor[string](), Values: make([]any, len(cells))}
	for i, cell := range cells {
		if cell != nil {
			col.Values[i] = *cell
		}
	}
	return col
}

type columnConverter struct {
	typ   reflect.Type
	parse func(string) (any, error)
}

// convert returns false if any non nil cell can't be parsed
// or if all cells are nil.
func (c columnConverter) convert(name string, cells []*string) (Column, bool) {
	col := Column{Name: name, Type: c.typ, Values: make([]any, len(cells))}
	numParsed := 0
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		v, err := c.parse(*cell)
		if err != nil {
			return Column{}, false
		}
		col.Values[i] = v
		numParsed++
	}
	return col, numParsed > 0
}

func columnConverters(p *StringParser) []columnConverter {
	return []columnConverter{
		{reflect.TypeFor[int64](), func(s string) (any, error) { return p.ParseInt(s) }},
		{reflect.TypeFor[float64](), func(s string) (any, error) { return p.ParseFloat(s) }},
		{reflect.TypeFor[bool](), func(s string) (any, error) { return p.ParseBool(s) }},
		{reflect.TypeFor[time.Time](), func(s string) (any, error) { return p.ParseTime(s) }},
		{reflect.TypeFor[time.Duration](), func(s string) (any, error) { return p.ParseDuration(s) }},
	}
}
