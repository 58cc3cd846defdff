package gridview

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"
)

// ValueEncoder encodes a single cell value as JSON.
//
// An encoder returns errors.ErrUnsupported if it can not
// encode the passed value so that encoders can be chained.
type ValueEncoder interface {
	EncodeValue(val reflect.Value) ([]byte, error)
}

// ValueEncoderFunc implements ValueEncoder with a function.
type ValueEncoderFunc func(val reflect.Value) ([]byte, error)

func (f ValueEncoderFunc) EncodeValue(val reflect.Value) ([]byte, error) {
	return f(val)
}

var (
	_ ValueEncoder = new(ReflectTypeValueEncoder)
	_ ValueEncoder = ValueEncoderFunc(nil)

	typeOfJSONMarshaler = reflect.TypeFor[json.Marshaler]()

	jsonNull = []byte("null")
)

// ReflectTypeValueEncoder routes to the ValueEncoder
// registered for the type, interface, or kind of a value.
//
// Matching order:
//  1. Exact type (Types)
//  2. Implemented interface (InterfaceTypes)
//  3. Kind (Kinds)
//  4. Default
//
// Pointers are dereferenced before matching
// unless Types holds an encoder for the exact pointer type.
//
// An encoder returning errors.ErrUnsupported continues the search,
// any other error is returned immediately.
// Values for which ValueIsNil returns true
// are encoded as JSON null without consulting any encoder.
//
// The With* methods return a modified copy.
type ReflectTypeValueEncoder struct {
	Types          map[reflect.Type]ValueEncoder
	InterfaceTypes map[reflect.Type]ValueEncoder
	Kinds          map[reflect.Kind]ValueEncoder
	Default        ValueEncoder
}

func NewReflectTypeValueEncoder() *ReflectTypeValueEncoder {
	return new(ReflectTypeValueEncoder)
}

// NewRecordEncoder returns the ValueEncoder used for grid rows.
//
// Floats are written with precision fractional digits
// and NaN or infinite floats as null.
// Times are written in UTC as ISO 8601 strings with milliseconds,
// the zero time as null.
// Durations are written as ISO 8601 duration strings.
// Values implementing json.Marshaler are written by their MarshalJSON method,
// everything else with encoding/json.
func NewRecordEncoder(precision int) *ReflectTypeValueEncoder {
	return NewReflectTypeValueEncoder().
		WithTypeEncoder(typeOfTime, ValueEncoderFunc(EncodeTime)).
		WithTypeEncoder(typeOfDuration, ValueEncoderFunc(EncodeDuration)).
		WithInterfaceTypeEncoder(typeOfJSONMarshaler, ValueEncoderFunc(EncodeJSON)).
		WithKindEncoder(reflect.Float32, FloatEncoder(precision)).
		WithKindEncoder(reflect.Float64, FloatEncoder(precision)).
		WithDefaultEncoder(ValueEncoderFunc(EncodeJSON))
}

func (e *ReflectTypeValueEncoder) clone() *ReflectTypeValueEncoder {
	c := new(ReflectTypeValueEncoder)
	if e == nil {
		return c
	}
	c.Types = cloneMap(e.Types)
	c.InterfaceTypes = cloneMap(e.InterfaceTypes)
	c.Kinds = cloneMap(e.Kinds)
	c.Default = e.Default
	return c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (e *ReflectTypeValueEncoder) WithTypeEncoder(typ reflect.Type, enc ValueEncoder) *ReflectTypeValueEncoder {
	mod := e.clone()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]ValueEncoder)
	}
	mod.Types[typ] = enc
	return mod
}

func (e *ReflectTypeValueEncoder) WithInterfaceTypeEncoder(typ reflect.Type, enc ValueEncoder) *ReflectTypeValueEncoder {
	mod := e.clone()
	if mod.InterfaceTypes == nil {
		mod.InterfaceTypes = make(map[reflect.Type]ValueEncoder)
	}
	mod.InterfaceTypes[typ] = enc
	return mod
}

func (e *ReflectTypeValueEncoder) WithKindEncoder(kind reflect.Kind, enc ValueEncoder) *ReflectTypeValueEncoder {
	mod := e.clone()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]ValueEncoder)
	}
	mod.Kinds[kind] = enc
	return mod
}

func (e *ReflectTypeValueEncoder) WithDefaultEncoder(enc ValueEncoder) *ReflectTypeValueEncoder {
	mod := e.clone()
	mod.Default = enc
	return mod
}

func (e *ReflectTypeValueEncoder) EncodeValue(val reflect.Value) ([]byte, error) {
	if ValueIsNil(val) {
		return jsonNull, nil
	}
	if e == nil {
		return nil, errors.ErrUnsupported
	}
	if val.Kind() == reflect.Pointer {
		if enc, ok := e.Types[val.Type()]; ok {
			data, err := enc.EncodeValue(val)
			if !errors.Is(err, errors.ErrUnsupported) {
				return data, err
			}
		}
		for val.Kind() == reflect.Pointer {
			val = val.Elem()
			if ValueIsNil(val) {
				return jsonNull, nil
			}
		}
	}
	if data, err := e.encodeMatching(val); !errors.Is(err, errors.ErrUnsupported) {
		return data, err
	}
	if e.Default != nil {
		return e.Default.EncodeValue(val)
	}
	return nil, errors.ErrUnsupported
}

func (e *ReflectTypeValueEncoder) encodeMatching(val reflect.Value) ([]byte, error) {
	typ := val.Type()
	if enc, ok := e.Types[typ]; ok {
		data, err := enc.EncodeValue(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return data, err
		}
	}
	for interfaceType, enc := range e.InterfaceTypes {
		if typ.Implements(interfaceType) {
			data, err := enc.EncodeValue(val)
			if !errors.Is(err, errors.ErrUnsupported) {
				return data, err
			}
		}
	}
	if enc, ok := e.Kinds[typ.Kind()]; ok {
		data, err := enc.EncodeValue(val)
		if !errors.Is(err, errors.ErrUnsupported) {
			return data, err
		}
	}
	return nil, errors.ErrUnsupported
}

// FloatEncoder returns a ValueEncoder for float kinds
// writing precision fractional digits, at most MaxPrecision.
// NaN and infinite values are encoded as null,
// values rounded to zero are never written with a minus sign.
func FloatEncoder(precision int) ValueEncoder {
	precision = min(precision, MaxPrecision)
	return ValueEncoderFunc(func(val reflect.Value) ([]byte, error) {
		var bitSize int
		switch val.Kind() {
		case reflect.Float32:
			bitSize = 32
		case reflect.Float64:
			bitSize = 64
		default:
			return nil, errors.ErrUnsupported
		}
		f := val.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return jsonNull, nil
		}
		b := strconv.AppendFloat(nil, f, 'f', precision, bitSize)
		if isNegativeZero(b) {
			b = b[1:]
		}
		return b, nil
	})
}

// isNegativeZero reports if b is a formatted float
// like "-0" or "-0.00" that was rounded to zero.
func isNegativeZero(b []byte) bool {
	if len(b) < 2 || b[0] != '-' {
		return false
	}
	return !slices.ContainsFunc(b[1:], func(c byte) bool { return c != '0' && c != '.' })
}

// TimeLayout is the ISO 8601 layout used for time.Time values.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// EncodeTime encodes a time.Time as JSON string
// in UTC using TimeLayout. The zero time is encoded as null.
func EncodeTime(val reflect.Value) ([]byte, error) {
	t, ok := val.Interface().(time.Time)
	if !ok {
		return nil, errors.ErrUnsupported
	}
	if t.IsZero() {
		return jsonNull, nil
	}
	b := make([]byte, 0, len(TimeLayout)+2)
	b = append(b, '"')
	b = t.UTC().AppendFormat(b, TimeLayout)
	return append(b, '"'), nil
}

// EncodeDuration encodes a time.Duration as JSON string
// in the ISO 8601 format returned by FormatISODuration.
func EncodeDuration(val reflect.Value) ([]byte, error) {
	d, ok := val.Interface().(time.Duration)
	if !ok {
		return nil, errors.ErrUnsupported
	}
	return strconv.AppendQuote(nil, FormatISODuration(d)), nil
}

// FormatISODuration formats a duration as ISO 8601 duration
// with days, hours, minutes, and seconds with millisecond precision,
// for example "P1DT2H30M5.250S". Negative durations are prefixed with "-".
func FormatISODuration(d time.Duration) string {
	d = d.Round(time.Millisecond)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	millis := d / time.Millisecond
	return fmt.Sprintf("%sP%dDT%dH%dM%d.%03dS", sign, days, hours, minutes, millis/1000, millis%1000)
}

// EncodeJSON encodes a value with encoding/json.
// HTML special characters in strings are escaped
// so the output can be embedded in a script element.
func EncodeJSON(val reflect.Value) ([]byte, error) {
	data, err := json.Marshal(val.Interface())
	if err != nil {
		return nil, fmt.Errorf("can't encode %s value as JSON: %w", val.Type(), err)
	}
	return data, nil
}

// ValueIsNil returns true for values encoded as JSON null
// by the record encoders: invalid values, nil values
// of nillable kinds, and empty structs without methods.
func ValueIsNil(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return val.IsNil()
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			return true
		}
	}
	return false
}
