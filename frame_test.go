package gridview

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	frame, err := NewFrame("t", Index{}, NewColumn("a", 1, 2), NewColumn("b", "x", "y"))
	require.NoError(t, err)
	require.Equal(t, "t", frame.Title())
	require.Equal(t, []string{"a", "b"}, frame.Columns())
	require.Equal(t, 2, frame.NumRows())
	require.Equal(t, "y", frame.Cell(1, 1))
	require.Nil(t, frame.Cell(2, 0))
	require.Nil(t, frame.Cell(0, -1))
	require.False(t, frame.ReflectCell(5, 5).IsValid())
	require.Equal(t, reflect.TypeFor[int](), frame.ColumnType(0))
	require.Equal(t, 1, frame.ColumnIndex("b"))
	require.Equal(t, -1, frame.ColumnIndex("c"))

	_, err = NewFrame("t", SingleIndex(NewColumn("i", 1)), NewColumn("a", 1, 2))
	require.ErrorIs(t, err, ErrRaggedColumns)
}

func TestFrame_Clone(t *testing.T) {
	frame := &Frame{
		Tit:   "t",
		Cols:  []Column{NewColumn("a", 1, 2)},
		Index: SingleIndex(NewColumn("i", "x", "y")),
	}
	clone := frame.Clone()
	require.Equal(t, frame, clone)

	clone.Cols[0].Values[0] = 9
	clone.Index.Levels[0].Name = "j"
	require.Equal(t, 1, frame.Cols[0].Values[0])
	require.Equal(t, "i", frame.Index.Levels[0].Name)
}

func TestAsReflectCellView(t *testing.T) {
	view := AsReflectCellView(viewReflector{&Frame{Cols: []Column{{Name: "a", Values: []any{nil, 1.5}}}}})
	require.Equal(t, reflect.TypeFor[float64](), view.ColumnType(0))
	require.Equal(t, 1.5, view.ReflectCell(1, 0).Interface())
}

func TestFrame_WithIndex(t *testing.T) {
	frame, err := NewFrame("", Index{}, NewColumn("a", 1, 2), NewColumn("b", "x", "y"), NewColumn("c", true, false))
	require.NoError(t, err)

	indexed, err := frame.WithIndex("c", "a")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, indexed.Columns())
	require.True(t, indexed.Index.IsMulti())
	require.Equal(t, "c", indexed.Index.Levels[0].Name)
	require.Equal(t, "a", indexed.Index.Levels[1].Name)
	require.Len(t, frame.Cols, 3, "original frame unchanged")

	normalized, err := NormalizeIndex(indexed)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, normalized.Columns())

	_, err = frame.WithIndex("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
}
