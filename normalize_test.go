package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeIndex(t *testing.T) {
	tests := []struct {
		name      string
		frame     *Frame
		wantNames []string
		wantIndex []any
		wantErr   error
	}{
		{
			name: "implicit range index",
			frame: &Frame{Cols: []Column{
				NewColumn("A", "x", "y", "z"),
			}},
			wantNames: []string{"index", "A"},
			wantIndex: []any{int64(0), int64(1), int64(2)},
		},
		{
			name: "implicit range index with index column",
			frame: &Frame{Cols: []Column{
				NewColumn("index", 7, 8),
			}},
			wantNames: []string{"level_0", "index"},
			wantIndex: []any{int64(0), int64(1)},
		},
		{
			name: "named single index",
			frame: &Frame{
				Cols:  []Column{NewColumn("A", 1.5, 2.5)},
				Index: SingleIndex(NewColumn("date", "2024-01-01", "2024-01-02")),
			},
			wantNames: []string{"date", "A"},
			wantIndex: []any{"2024-01-01", "2024-01-02"},
		},
		{
			name: "unnamed single index",
			frame: &Frame{
				Cols:  []Column{NewColumn("A", 1, 2)},
				Index: SingleIndex(NewColumn("", "a", "b")),
			},
			wantNames: []string{"index", "A"},
			wantIndex: []any{"a", "b"},
		},
		{
			name: "multi index with unnamed level",
			frame: &Frame{
				Cols: []Column{NewColumn("A", 1, 2)},
				Index: MultiIndex(
					NewColumn("outer", "x", "x"),
					NewColumn("", 1, 2),
				),
			},
			wantNames: []string{"outer", "level_1", "A"},
			wantIndex: []any{"x", "x"},
		},
		{
			name: "empty frame",
			frame: &Frame{Cols: []Column{
				NewColumn[float64]("A"),
			}},
			wantNames: []string{"index", "A"},
			wantIndex: []any{},
		},
		{
			name: "named index collides with column",
			frame: &Frame{
				Cols:  []Column{NewColumn("A", 1, 2)},
				Index: SingleIndex(NewColumn("A", 3, 4)),
			},
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "duplicate column names",
			frame: &Frame{Cols: []Column{
				NewColumn("a", 1, 2),
				NewColumn("a", 3, 4),
			}},
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "duplicate index level names",
			frame: &Frame{
				Cols:  []Column{NewColumn("A", 1, 2)},
				Index: MultiIndex(NewColumn("k", 1, 2), NewColumn("k", 3, 4)),
			},
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "ragged",
			frame: &Frame{Cols: []Column{
				NewColumn("A", 1, 2),
				NewColumn("B", 1),
			}},
			wantErr: ErrRaggedColumns,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numCols := len(tt.frame.Cols)
			got, err := NormalizeIndex(tt.frame)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantNames, got.Columns())
			require.Equal(t, tt.wantIndex, got.Cols[0].Values)
			require.True(t, got.Index.IsRange())
			require.Equal(t, tt.frame.NumRows(), got.NumRows())
			require.Len(t, tt.frame.Cols, numCols, "input frame must not be modified")
		})
	}
}

func TestNormalizeIndex_DoesNotModifyInput(t *testing.T) {
	frame := &Frame{
		Cols:  []Column{NewColumn("A", 1, 2)},
		Index: MultiIndex(NewColumn("", "a", "b"), NewColumn("", 1, 2)),
	}
	got, err := NormalizeIndex(frame)
	require.NoError(t, err)
	require.Equal(t, []string{"level_0", "level_1", "A"}, got.Columns())

	require.Equal(t, "", frame.Index.Levels[0].Name)
	require.Len(t, frame.Index.Levels, 2)

	got.Cols[2].Values[0] = 99
	require.Equal(t, 1, frame.Cols[0].Values[0])
}

func TestNormalizeIndex_ColumnCount(t *testing.T) {
	frame := &Frame{
		Cols: []Column{
			NewColumn("A", 1, 2, 3),
			NewColumn("B", "x", "y", "z"),
		},
		Index: MultiIndex(
			NewColumn("k1", 1, 1, 2),
			NewColumn("k2", 1, 2, 1),
			NewColumn("k3", "a", "b", "c"),
		),
	}
	got, err := NormalizeIndex(frame)
	require.NoError(t, err)
	require.Len(t, got.Columns(), 3+2)
	require.Len(t, ClassifyColumns(got), 5)
}
