package gridview

import (
	"fmt"
	"reflect"
)

// FrameFromStructs returns a Frame with one column per exported
// struct field and one row per element of rows,
// which must be a slice or array of structs or struct pointers.
//
// Column names are derived from the fields by naming,
// pass &DefaultStructFieldNaming to use "col" struct tags.
// Nil struct pointers and fields of nil embedded
// struct pointers result in nil values.
func FrameFromStructs(title string, rows any, naming *StructFieldNaming) (*Frame, error) {
	rowsVal := reflect.ValueOf(rows)
	for rowsVal.Kind() == reflect.Pointer && !rowsVal.IsNil() {
		rowsVal = rowsVal.Elem()
	}
	if rowsVal.Kind() != reflect.Slice && rowsVal.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array of structs, got %T", rows)
	}
	rowType := rowsVal.Type().Elem()
	if derefType(rowType).Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected slice or array of structs, got %T", rows)
	}

	var fields []reflect.StructField
	for _, field := range StructFieldTypes(derefType(rowType)) {
		if !naming.IsIgnored(field) {
			fields = append(fields, field)
		}
	}

	numRows := rowsVal.Len()
	cols := make([]Column, len(fields))
	for i, field := range fields {
		cols[i] = Column{
			Name:   naming.StructFieldColumn(field),
			Type:   field.Type,
			Values: make([]any, numRows),
		}
	}
	for row := range numRows {
		rowVal := rowsVal.Index(row)
		for rowVal.Kind() == reflect.Pointer && !rowVal.IsNil() {
			rowVal = rowVal.Elem()
		}
		if rowVal.Kind() != reflect.Struct {
			continue
		}
		for i, field := range fields {
			v, err := rowVal.FieldByIndexErr(field.Index)
			if err != nil || !v.CanInterface() {
				continue
			}
			cols[i].Values[row] = v.Interface()
		}
	}
	return NewFrame(title, Index{}, cols...)
}
