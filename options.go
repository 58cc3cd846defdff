package gridview

import (
	"fmt"
	"maps"
	"reflect"
)

// Options are display options of the client side grid widget
// keyed by the widget's option names.
// Unknown names are passed through to the widget unchanged.
type Options map[string]any

// defaultOptions must never be modified,
// DefaultOptions returns a copy.
var defaultOptions = Options{
	"enableCellNavigation":       true,
	"fullWidthRows":              true,
	"syncColumnCellResize":       true,
	"forceFitColumns":            true,
	"rowHeight":                  28,
	"enableColumnReorder":        false,
	"enableTextSelectionOnCells": true,
}

// DefaultOptions returns a new copy of the default widget options.
func DefaultOptions() Options {
	return maps.Clone(defaultOptions)
}

// Clone returns a deep copy of the options.
// Nested maps and slices are copied, other values are shared.
func (o Options) Clone() Options {
	clone := make(Options, len(o))
	copyOptions(clone, reflect.ValueOf(o))
	return clone
}

// MergeOptions returns the default options overlaid with overrides.
//
// A nil overrides value is treated as empty.
// Accepted are Options, map[string]any, and any other map type
// with a string kind key. Other values return an error
// wrapping ErrInvalidOptions.
//
// Nested maps and slices of overrides are copied
// so the result never shares them with the caller.
func MergeOptions(overrides any) (Options, error) {
	merged := DefaultOptions()
	if overrides == nil {
		return merged, nil
	}
	v := reflect.ValueOf(overrides)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %T is not a mapping with string keys", ErrInvalidOptions, overrides)
	}
	if v.IsNil() {
		return merged, nil
	}
	copyOptions(merged, v)
	return merged, nil
}

// copyOptions sets deep copies of the values of the
// string keyed map src in dst.
func copyOptions(dst Options, src reflect.Value) {
	copied := make(map[copiedKey]reflect.Value)
	for iter := src.MapRange(); iter.Next(); {
		dst[iter.Key().String()] = deepCopy(iter.Value(), copied).Interface()
	}
}

type copiedKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// deepCopy returns a copy of v with all maps and slices
// reachable through maps, slices and interfaces copied.
// Already copied maps and slices are looked up in copied
// so shared and cyclic values keep their structure.
func deepCopy(v reflect.Value, copied map[copiedKey]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return deepCopy(v.Elem(), copied)

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := copiedKey{typ: v.Type(), ptr: v.Pointer()}
		if c, ok := copied[key]; ok {
			return c
		}
		m := reflect.MakeMapWithSize(v.Type(), v.Len())
		copied[key] = m
		for iter := v.MapRange(); iter.Next(); {
			m.SetMapIndex(iter.Key(), deepCopy(iter.Value(), copied))
		}
		return m

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := copiedKey{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}
		if c, ok := copied[key]; ok {
			return c
		}
		s := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		copied[key] = s
		for i := range v.Len() {
			s.Index(i).Set(deepCopy(v.Index(i), copied))
		}
		return s
	}
	return v
}
