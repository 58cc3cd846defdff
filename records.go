package gridview

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// WriteRecords writes the rows of a view as JSON array of flat objects
// to w, with the column names as keys in column order
// and the rows in view order.
// Every cell value is encoded by enc.
//
// The context is checked for cancellation before every row.
func WriteRecords(ctx context.Context, w io.Writer, view View, enc ValueEncoder) error {
	rv := AsReflectCellView(view)

	columns := view.Columns()
	keys := make([][]byte, len(columns))
	for col, name := range columns {
		if slices.Index(columns, name) != col {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		key, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("can't encode column name %q: %w", name, err)
		}
		keys[col] = key
	}

	b := bufio.NewWriter(w)
	b.WriteByte('[')
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for col, key := range keys {
			value, err := enc.EncodeValue(rv.ReflectCell(row, col))
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", row, columns[col], err)
			}
			if col > 0 {
				b.WriteByte(',')
			}
			b.Write(key)
			b.WriteByte(':')
			b.Write(value)
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.Flush()
}

// MarshalRecords returns the rows of a view as JSON array of flat objects
// using NewRecordEncoder with the passed float precision.
func MarshalRecords(ctx context.Context, view View, precision int) ([]byte, error) {
	var buf bytes.Buffer
	err := WriteRecords(ctx, &buf, view, NewRecordEncoder(precision))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
