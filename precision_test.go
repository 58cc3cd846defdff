package gridview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePrecision(t *testing.T) {
	tests := []struct {
		name             string
		explicit         any
		displayPrecision int
		want             int
		wantErr          bool
	}{
		{name: "nil uses display precision minus one", explicit: nil, displayPrecision: 6, want: 5},
		{name: "nil with display precision 1", explicit: nil, displayPrecision: 1, want: 0},
		{name: "nil with display precision 0", explicit: nil, displayPrecision: 0, want: 0},
		{name: "int", explicit: 2, displayPrecision: 6, want: 2},
		{name: "zero", explicit: 0, displayPrecision: 6, want: 0},
		{name: "int64", explicit: int64(10), displayPrecision: 6, want: 10},
		{name: "uint8", explicit: uint8(3), displayPrecision: 6, want: 3},
		{name: "nil with large display precision", explicit: nil, displayPrecision: 100, want: MaxPrecision},
		{name: "max", explicit: MaxPrecision, displayPrecision: 6, want: MaxPrecision},
		{name: "above max", explicit: MaxPrecision + 1, displayPrecision: 6, wantErr: true},
		{name: "huge", explicit: 1 << 30, displayPrecision: 6, wantErr: true},
		{name: "huge uint64", explicit: uint64(1) << 63, displayPrecision: 6, wantErr: true},
		{name: "negative", explicit: -1, displayPrecision: 6, wantErr: true},
		{name: "float", explicit: 2.0, displayPrecision: 6, wantErr: true},
		{name: "string", explicit: "2", displayPrecision: 6, wantErr: true},
		{name: "bool", explicit: true, displayPrecision: 6, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePrecision(tt.explicit, tt.displayPrecision)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrecision)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
