package gridview

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type rowsView struct {
	cols []string
	rows [][]any
}

func (v *rowsView) Title() string     { return "rows" }
func (v *rowsView) Columns() []string { return v.cols }
func (v *rowsView) NumRows() int      { return len(v.rows) }

func (v *rowsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(v.rows) || col >= len(v.rows[row]) {
		return nil
	}
	return v.rows[row][col]
}

func TestFrameFromView(t *testing.T) {
	view := &rowsView{
		cols: []string{"a", "b", "c"},
		rows: [][]any{
			{nil, "x"},
			{1.5, "y", true},
		},
	}
	frame, err := FrameFromView(view)
	require.NoError(t, err)
	require.Equal(t, "rows", frame.Title())
	require.Equal(t, []string{"a", "b", "c"}, frame.Columns())
	require.True(t, frame.Index.IsRange())
	require.Equal(t, []any{nil, 1.5}, frame.Cols[0].Values)
	require.Equal(t, []any{nil, true}, frame.Cols[2].Values)
	require.Equal(t, reflect.TypeFor[float64](), frame.Cols[0].Type)
	require.Equal(t, []ColumnType{
		{Field: "a", Type: TagFloat},
		{Field: "b", Type: TagString},
		{Field: "c", Type: TagBoolean},
	}, ClassifyColumns(frame))

	indexed, err := NewFrame("f", SingleIndex(NewColumn("i", "r0")), NewColumn("a", 1))
	require.NoError(t, err)
	clone, err := FrameFromView(indexed)
	require.NoError(t, err)
	require.Equal(t, indexed, clone)
	clone.Cols[0].Values[0] = 2
	require.Equal(t, 1, indexed.Cols[0].Values[0])
}

func TestFrame_SelectColumns(t *testing.T) {
	frame, err := NewFrame("t", SingleIndex(NewColumn("i", 10, 20)),
		NewColumn("a", 1, 2),
		NewColumn("b", "x", "y"),
		NewColumn("c", true, false),
	)
	require.NoError(t, err)

	selected, err := frame.SelectColumns("c", "a")
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, selected.Columns())
	require.Equal(t, frame.Index, selected.Index)
	selected.Cols[1].Values[0] = 99
	require.Equal(t, 1, frame.Cols[0].Values[0])

	_, err = frame.SelectColumns("a", "missing")
	require.ErrorIs(t, err, ErrColumnNotFound)

	dropped := frame.DropColumns("b", "missing")
	require.Equal(t, []string{"a", "c"}, dropped.Columns())
	require.Equal(t, []string{"a", "b", "c"}, frame.Columns())
}
