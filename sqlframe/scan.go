// Package sqlframe scans SQL query results into a gridview.Frame.
package sqlframe

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/domonda/go-gridview"
)

var _ Rows = new(sql.Rows)

// Rows is the subset of the *sql.Rows methods used by ScanRows.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
}

// Queryer is implemented by *sql.DB, *sql.Conn, and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// ScanRows scans all rows into a new gridview.Frame and closes rows.
//
// SQL NULL values become nil cell values. Byte slice columns
// where every value is valid UTF-8 are converted to strings
// because many drivers return text columns as bytes.
// The column types are the types of the first non nil value
// in every column.
func ScanRows(ctx context.Context, title string, rows Rows) (frame *gridview.Frame, err error) {
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	cols := make([]gridview.Column, len(columns))
	for i, name := range columns {
		cols[i].Name = name
	}

	scanners := make([]any, len(columns))
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scanned := make([]any, len(columns))
		for i := range scanners {
			scanners[i] = valueScanner{&scanned[i]}
		}
		if err := rows.Scan(scanners...); err != nil {
			return nil, err
		}
		for i, v := range scanned {
			cols[i].Values = append(cols[i].Values, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range cols {
		if cols[i].Values == nil {
			cols[i].Values = []any{}
		}
		bytesToStrings(&cols[i])
	}
	return gridview.NewFrame(title, gridview.Index{}, cols...)
}

// Query executes query with args and scans
// the resulting rows into a new gridview.Frame.
func Query(ctx context.Context, db Queryer, title, query string, args ...any) (*gridview.Frame, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return ScanRows(ctx, title, rows)
}

func bytesToStrings(col *gridview.Column) {
	hasBytes := false
	for _, v := range col.Values {
		switch b := v.(type) {
		case nil:
		case []byte:
			if !utf8.Valid(b) {
				return
			}
			hasBytes = true
		default:
			return
		}
	}
	if !hasBytes {
		return
	}
	for i, v := range col.Values {
		if b, ok := v.([]byte); ok {
			col.Values[i] = string(b)
		}
	}
}

var _ sql.Scanner = valueScanner{}

type valueScanner struct {
	dest *any
}

func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Driver owned bytes are only valid until the next call to Next
		src = slices.Clone(b)
	}
	*s.dest = src
	return nil
}
