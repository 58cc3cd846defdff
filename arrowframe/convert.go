// Package arrowframe converts Apache Arrow records and tables
// and Parquet files into a gridview.Frame.
//
// The index of frames written by pandas is restored
// from the "pandas" schema metadata.
package arrowframe

import (
	"reflect"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/domonda/go-gridview"
)

// FromRecord returns a Frame with the columns of rec.
func FromRecord(title string, rec arrow.Record) (*gridview.Frame, error) {
	tbl := array.NewTableFromRecords(rec.Schema(), []arrow.Record{rec})
	defer tbl.Release()
	return FromTable(title, tbl)
}

// FromTable returns a Frame with the columns of tbl.
// Columns with nested or otherwise unsupported types
// hold the JSON marshalling representation of their values.
func FromTable(title string, tbl arrow.Table) (*gridview.Frame, error) {
	schema := tbl.Schema()
	cols := make([]gridview.Column, schema.NumFields())
	for i, field := range schema.Fields() {
		cols[i] = gridview.Column{
			Name:   field.Name,
			Type:   goType(field.Type),
			Values: make([]any, 0, tbl.NumRows()),
		}
	}

	reader := array.NewTableReader(tbl, tbl.NumRows())
	defer reader.Release()
	for reader.Next() {
		rec := reader.Record()
		for i := range cols {
			cols[i].Values = appendValues(cols[i].Values, rec.Column(i))
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	frame, err := gridview.NewFrame(title, gridview.Index{}, cols...)
	if err != nil {
		return nil, err
	}
	return applyPandasMetadata(frame, schema.Metadata())
}

// goType returns the Go type used for values of an Arrow data type
// or nil if the values have no single Go type.
func goType(dt arrow.DataType) reflect.Type {
	switch dt.ID() {
	case arrow.INT8:
		return reflect.TypeFor[int8]()
	case arrow.INT16:
		return reflect.TypeFor[int16]()
	case arrow.INT32:
		return reflect.TypeFor[int32]()
	case arrow.INT64:
		return reflect.TypeFor[int64]()
	case arrow.UINT8:
		return reflect.TypeFor[uint8]()
	case arrow.UINT16:
		return reflect.TypeFor[uint16]()
	case arrow.UINT32:
		return reflect.TypeFor[uint32]()
	case arrow.UINT64:
		return reflect.TypeFor[uint64]()
	case arrow.FLOAT16, arrow.FLOAT32:
		return reflect.TypeFor[float32]()
	case arrow.FLOAT64, arrow.DECIMAL128:
		return reflect.TypeFor[float64]()
	case arrow.BOOL:
		return reflect.TypeFor[bool]()
	case arrow.STRING, arrow.LARGE_STRING:
		return reflect.TypeFor[string]()
	case arrow.BINARY, arrow.LARGE_BINARY:
		return reflect.TypeFor[[]byte]()
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP:
		return reflect.TypeFor[time.Time]()
	case arrow.DURATION:
		return reflect.TypeFor[time.Duration]()
	}
	return nil
}

func appendValues(values []any, arr arrow.Array) []any {
	var value func(i int) any
	switch a := arr.(type) {
	case *array.Int8:
		value = func(i int) any { return a.Value(i) }
	case *array.Int16:
		value = func(i int) any { return a.Value(i) }
	case *array.Int32:
		value = func(i int) any { return a.Value(i) }
	case *array.Int64:
		value = func(i int) any { return a.Value(i) }
	case *array.Uint8:
		value = func(i int) any { return a.Value(i) }
	case *array.Uint16:
		value = func(i int) any { return a.Value(i) }
	case *array.Uint32:
		value = func(i int) any { return a.Value(i) }
	case *array.Uint64:
		value = func(i int) any { return a.Value(i) }
	case *array.Float16:
		value = func(i int) any { return a.Value(i).Float32() }
	case *array.Float32:
		value = func(i int) any { return a.Value(i) }
	case *array.Float64:
		value = func(i int) any { return a.Value(i) }
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		value = func(i int) any { return a.Value(i).ToFloat64(scale) }
	case *array.Boolean:
		value = func(i int) any { return a.Value(i) }
	case *array.String:
		value = func(i int) any { return a.Value(i) }
	case *array.LargeString:
		value = func(i int) any { return a.Value(i) }
	case *array.Binary:
		value = func(i int) any { return append([]byte(nil), a.Value(i)...) }
	case *array.LargeBinary:
		value = func(i int) any { return append([]byte(nil), a.Value(i)...) }
	case *array.Date32:
		value = func(i int) any { return a.Value(i).ToTime() }
	case *array.Date64:
		value = func(i int) any { return a.Value(i).ToTime() }
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		value = func(i int) any { return a.Value(i).ToTime(unit) }
	case *array.Duration:
		multiplier := a.DataType().(*arrow.DurationType).Unit.Multiplier()
		value = func(i int) any { return time.Duration(a.Value(i)) * multiplier }
	default:
		value = arr.GetOneForMarshal
	}
	for i := range arr.Len() {
		if arr.IsNull(i) {
			values = append(values, nil)
			continue
		}
		values = append(values, value(i))
	}
	return values
}
