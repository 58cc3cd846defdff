package gridview

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFrameFromStrings(t *testing.T) {
	header := []string{"int", "float", "bool", "date", "text", "empty", "dur"}
	rows := [][]string{
		{"1", "1.5", "true", "2024-03-15", "a", "", "1h"},
		{"", "2,5", "FALSE", "March 16, 2024", "2", "NULL", "90s"},
		{"3", "3", "false", "2024-03-17T10:00:00Z", "c"},
	}
	frame, err := FrameFromStrings("test", header, rows, nil)
	require.NoError(t, err)
	require.Equal(t, "test", frame.Title())
	require.Equal(t, header, frame.Columns())
	require.Equal(t, 3, frame.NumRows())

	wantTypes := []reflect.Type{
		reflect.TypeFor[int64](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[string](),
		reflect.TypeFor[string](),
		reflect.TypeFor[time.Duration](),
	}
	for col, want := range wantTypes {
		require.Equal(t, want, frame.ColumnType(col), header[col])
	}

	require.Equal(t, []any{int64(1), nil, int64(3)}, frame.Cols[0].Values)
	require.Equal(t, []any{1.5, 2.5, 3.0}, frame.Cols[1].Values)
	require.Equal(t, []any{true, false, false}, frame.Cols[2].Values)
	require.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), frame.Cols[3].Values[1])
	require.Equal(t, []any{"a", "2", "c"}, frame.Cols[4].Values)
	require.Equal(t, []any{nil, nil, nil}, frame.Cols[5].Values)
	require.Equal(t, []any{time.Hour, 90 * time.Second, nil}, frame.Cols[6].Values)
}

func TestFrameFromStrings_Errors(t *testing.T) {
	_, err := FrameFromStrings("", []string{"a", "a"}, nil, nil)
	require.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = FrameFromStrings("", []string{"a"}, [][]string{{"1", "2"}}, nil)
	require.ErrorIs(t, err, ErrRaggedColumns)
}

func TestStringParser_ParseTime(t *testing.T) {
	p := NewStringParser()

	got, err := p.ParseTime("15.03.2024")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = p.ParseTime("12345")
	require.Error(t, err, "plain numbers are not guessed as timestamps")

	p.GuessTimeFormat = false
	_, err = p.ParseTime("March 16, 2024")
	require.Error(t, err)
}
