package gridview

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"unicode"
)

// DefaultStructFieldNaming uses the "col" struct tag as column name,
// skips fields tagged with "-" and uses SpacePascalCase
// of the field name for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

// StructFieldNaming defines how struct fields
// are mapped to column names.
//
// nil is a valid value for *StructFieldNaming
// and uses all exported struct fields
// with their field name as column name.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column name.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is a column name that excludes
	// the field from the columns.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a column name in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column name for a struct field.
func (n *StructFieldNaming) StructFieldColumn(field reflect.StructField) string {
	if n == nil {
		return field.Name
	}
	if n.Tag != "" {
		if tag, ok := field.Tag.Lookup(n.Tag); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return field.Name
	}
	return n.Untagged(field.Name)
}

// IsIgnored returns true if the column name of the field equals Ignore.
func (n *StructFieldNaming) IsIgnored(field reflect.StructField) bool {
	return n != nil && n.Ignore != "" && n.StructFieldColumn(field) == n.Ignore
}

// Columns returns the column names of the exported fields
// of a struct or struct pointer, excluding ignored fields.
func (n *StructFieldNaming) Columns(strct any) []string {
	fields := StructFieldTypes(reflect.TypeOf(strct))
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if !n.IsIgnored(field) {
			columns = append(columns, n.StructFieldColumn(field))
		}
	}
	return columns
}

// StructFieldTypes returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
// The Index of every returned field is the full index path
// usable with reflect.Value.FieldByIndexErr.
func StructFieldTypes(structType reflect.Type) []reflect.StructField {
	return appendStructFields(nil, structType, nil)
}

func appendStructFields(fields []reflect.StructField, structType reflect.Type, parentIndex []int) []reflect.StructField {
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	for i := range structType.NumField() {
		field := structType.Field(i)
		field.Index = append(append([]int(nil), parentIndex...), i)
		switch {
		case field.Anonymous && derefType(field.Type).Kind() == reflect.Struct:
			fields = appendStructFields(fields, field.Type, field.Index)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// SpacePascalCase splits PascalCase and snake_case names
// into space separated words, for example
// "UnitPrice" and "unit_price" become "Unit Price" and "unit price".
// Runs of upper case letters like "ID" stay one word.
// Usable for StructFieldNaming.Untagged
func SpacePascalCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		words[i] = splitUpper(word)
	}
	return strings.Join(words, " ")
}

func splitUpper(word string) string {
	var b strings.Builder
	b.Grow(len(word) + 2)
	prevUpper := true
	for _, r := range word {
		upper := unicode.IsUpper(r)
		if upper && !prevUpper {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevUpper = upper
	}
	return b.String()
}
