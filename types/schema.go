package types

import (
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"jsonbind.dev/names"
)

// Field is one entry of a struct schema: the wire property name, the
// reflect index path to reach the field, and its declared type.
type Field struct {
	Property string
	Index    []int
	Type     reflect.Type
}

// Schema is the enumerable field table of a struct type, built once and
// cached. Fields appear in declaration order, the type's own fields first,
// then the fields promoted from embedded structs declared in the same
// package; embedding stops at the first type from a different package.
// Only exported fields participate. A `json:"-"` tag excludes a field, any
// other `json:"name"` tag renames it.
type Schema struct {
	Type   reflect.Type
	Fields []Field
	byName map[string]int
}

var schemas = xsync.NewMapOf[reflect.Type, *Schema]()

// SchemaOf returns the cached schema for a struct type, building it on
// first use. Pointer types are dereferenced.
func SchemaOf(t reflect.Type) *Schema {
	t = Deref(t)
	s, _ := schemas.LoadOrCompute(t, func() *Schema {
		return buildSchema(t)
	})
	return s
}

// Field looks up a schema entry by wire property name.
func (s *Schema) Field(property string) (f Field, ok bool) {
	i, ok := s.byName[property]
	if !ok {
		return
	}
	return s.Fields[i], true
}

func buildSchema(t reflect.Type) *Schema {
	s := &Schema{
		Type:   t,
		byName: make(map[string]int),
	}
	if t.Kind() != reflect.Struct {
		return s
	}
	var embedded []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			embedded = append(embedded, sf)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		property, skip := propertyName(sf)
		if skip {
			continue
		}
		s.add(Field{Property: property, Index: sf.Index, Type: sf.Type})
	}
	// promoted fields of embedded structs come after the type's own, and
	// only while the embedded type lives in the same package
	for _, sf := range embedded {
		et := sf.Type
		if et.Kind() != reflect.Struct || et.PkgPath() != t.PkgPath() {
			continue
		}
		sub := buildSchema(et)
		for _, f := range sub.Fields {
			s.add(Field{
				Property: f.Property,
				Index:    append(sf.Index[:len(sf.Index):len(sf.Index)], f.Index...),
				Type:     f.Type,
			})
		}
	}
	return s
}

// add appends a field unless the property name is already taken; the
// shallower declaration wins.
func (s *Schema) add(f Field) {
	if _, exists := s.byName[f.Property]; exists {
		return
	}
	s.byName[f.Property] = len(s.Fields)
	s.Fields = append(s.Fields, f)
}

func propertyName(sf reflect.StructField) (property string, skip bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		if i := strings.IndexByte(tag, ','); i >= 0 {
			tag = tag[:i]
		}
		if tag != "" {
			return tag, false
		}
	}
	return names.ToPropertyName(sf.Name), false
}
