package gridview

import (
	"reflect"
	"time"
)

// TypeTag is the display type of a grid column
// as understood by the client side widget.
// The empty TypeTag means that the widget should
// not apply any type specific rendering.
type TypeTag string

const (
	TagInteger TypeTag = "integer"
	TagFloat   TypeTag = "float"
	TagBoolean TypeTag = "boolean"
	TagString  TypeTag = "string"
	TagDate    TypeTag = "date"
)

// NativeKind is the coarse category of a native element type.
type NativeKind int

const (
	KindObject NativeKind = iota
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindBool
	KindString
	KindDatetime
	KindTimedelta
	KindBytes
)

func (k NativeKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindDatetime:
		return "datetime"
	case KindTimedelta:
		return "timedelta"
	case KindBytes:
		return "bytes"
	}
	return "object"
}

var (
	typeOfTime     = reflect.TypeFor[time.Time]()
	typeOfDuration = reflect.TypeFor[time.Duration]()
	typeOfInt64    = reflect.TypeFor[int64]()
)

// NativeKindOf returns the NativeKind of a Go type.
// Pointer types are classified as their element type,
// a nil type is KindObject.
func NativeKindOf(t reflect.Type) NativeKind {
	if t == nil {
		return KindObject
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case typeOfTime:
		return KindDatetime
	case typeOfDuration:
		return KindTimedelta
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Complex64, reflect.Complex128:
		return KindComplex
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
	}
	return KindObject
}

type tagKinds struct {
	tag   TypeTag
	kinds []NativeKind
}

// typeTagTable is checked in order, the first entry
// containing the native kind of a column wins.
var typeTagTable = [...]tagKinds{
	{TagInteger, []NativeKind{KindInt, KindUint}},
	{TagFloat, []NativeKind{KindFloat}},
	{TagBoolean, []NativeKind{KindBool}},
	{TagString, []NativeKind{KindString}},
	{TagDate, []NativeKind{KindDatetime, KindTimedelta}},
}

// TypeTagOfKind returns the TypeTag for a NativeKind
// or an empty TypeTag if no tag covers the kind.
func TypeTagOfKind(kind NativeKind) TypeTag {
	for _, entry := range typeTagTable {
		for _, k := range entry.kinds {
			if k == kind {
				return entry.tag
			}
		}
	}
	return ""
}

// ClassifyType returns the TypeTag for a Go type.
func ClassifyType(t reflect.Type) TypeTag {
	return TypeTagOfKind(NativeKindOf(t))
}

// ColumnType describes a grid column for the client side widget.
type ColumnType struct {
	Field string  `json:"field"`
	Type  TypeTag `json:"type,omitempty"`
}

// ClassifyColumns returns one ColumnType per column of the view
// in column order.
func ClassifyColumns(view View) []ColumnType {
	rv := AsReflectCellView(view)
	columns := view.Columns()
	types := make([]ColumnType, len(columns))
	for col, name := range columns {
		types[col] = ColumnType{
			Field: name,
			Type:  ClassifyType(rv.ColumnType(col)),
		}
	}
	return types
}
