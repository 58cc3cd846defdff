package gridview

import (
	"fmt"
	"reflect"
)

// DefaultDisplayPrecision is the number of significant digits
// a display host shows for floats when nothing else is configured.
const DefaultDisplayPrecision = 6

// MaxPrecision is the largest number of fractional digits
// for float values. More digits than a float64 holds
// only add binary rounding noise.
const MaxPrecision = 15

// ResolvePrecision returns the number of fractional digits
// used to serialize float values.
//
// A nil explicit precision falls back to displayPrecision-1,
// clamped to the range 0 to MaxPrecision. Otherwise explicit must be
// a value of any Go integer kind between 0 and MaxPrecision,
// everything else returns an error wrapping ErrInvalidPrecision.
func ResolvePrecision(explicit any, displayPrecision int) (int, error) {
	if explicit == nil {
		return min(max(displayPrecision-1, 0), MaxPrecision), nil
	}
	v := reflect.ValueOf(explicit)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if p := v.Int(); p >= 0 && p <= MaxPrecision {
			return int(p), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if p := v.Uint(); p <= MaxPrecision {
			return int(p), nil
		}
	}
	return 0, fmt.Errorf("%w: %#v", ErrInvalidPrecision, explicit)
}
