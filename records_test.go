package gridview

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMarshalRecords(t *testing.T) {
	frame, err := NewFrame("", Index{},
		NewColumn("pi", math.Pi, math.NaN()),
		NewColumn("name", "<b>", "x"),
		Column{Name: "when", Values: []any{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), nil}},
	)
	require.NoError(t, err)
	normalized, err := NormalizeIndex(frame)
	require.NoError(t, err)

	data, err := MarshalRecords(context.Background(), normalized, 2)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(data))

	records := gjson.ParseBytes(data)
	require.Len(t, records.Array(), 2)
	require.Equal(t, int64(0), records.Get("0.index").Int())
	require.Equal(t, "3.14", records.Get("0.pi").Raw)
	require.Equal(t, gjson.Null, records.Get("1.pi").Type)
	require.Equal(t, "<b>", records.Get("0.name").String())
	require.Equal(t, "2024-01-02T03:04:05.000Z", records.Get("0.when").String())
	require.Equal(t, gjson.Null, records.Get("1.when").Type)

	var keys []string
	records.Get("0").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	require.Equal(t, []string{"index", "pi", "name", "when"}, keys, "keys in column order")
}

func TestMarshalRecords_Deterministic(t *testing.T) {
	frame, err := NewFrame("", Index{},
		NewColumn("a", 1.23456, 2.5),
		NewColumn("b", true, false),
	)
	require.NoError(t, err)

	first, err := MarshalRecords(context.Background(), frame, 3)
	require.NoError(t, err)
	second, err := MarshalRecords(context.Background(), frame, 3)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMarshalRecords_Empty(t *testing.T) {
	frame, err := NewFrame("", Index{}, NewColumn[int]("a"))
	require.NoError(t, err)
	data, err := MarshalRecords(context.Background(), frame, 2)
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))
}

func TestWriteRecords_Errors(t *testing.T) {
	frame, err := NewFrame("", Index{}, NewColumn("c", 1+1i))
	require.NoError(t, err)
	err = WriteRecords(context.Background(), new(bytes.Buffer), frame, NewRecordEncoder(2))
	require.ErrorContains(t, err, `row 0 column "c"`)

	frame, err = NewFrame("", Index{}, NewColumn("a", 1), NewColumn("a", 2))
	require.NoError(t, err)
	var buf bytes.Buffer
	err = WriteRecords(context.Background(), &buf, frame, NewRecordEncoder(2))
	require.ErrorIs(t, err, ErrDuplicateColumn)
	require.Zero(t, buf.Len(), "nothing written for duplicate columns")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frame, err = NewFrame("", Index{}, NewColumn("a", 1))
	require.NoError(t, err)
	err = WriteRecords(ctx, new(bytes.Buffer), frame, NewRecordEncoder(2))
	require.ErrorIs(t, err, context.Canceled)
}

func ExampleMarshalRecords() {
	frame, err := NewFrame("Prices", Index{},
		NewColumn("Item", "Apple", "Pear"),
		NewColumn("Price", 1.25, 0.999),
	)
	if err != nil {
		panic(err)
	}
	normalized, err := NormalizeIndex(frame)
	if err != nil {
		panic(err)
	}
	records, err := MarshalRecords(context.Background(), normalized, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(records))

	// Output:
	// [{"index":0,"Item":"Apple","Price":1.25},{"index":1,"Item":"Pear","Price":1.00}]
}
