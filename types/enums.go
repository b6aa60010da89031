package types

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"jsonbind.dev/errs"
)

// Enum member tables. A Go enum is a named type with a fixed set of values;
// the wire form is the member name, so both directions need an explicit
// table, registered once at startup.

type enumTable struct {
	values map[string]reflect.Value
	names  map[any]string
}

var enums = xsync.NewMapOf[reflect.Type, *enumTable]()

// RegisterEnum declares the members of an enum type. Member lookup on
// decode is exact and case-sensitive; encode emits the declared name.
func RegisterEnum[E comparable](members map[string]E) {
	t := reflect.TypeOf((*E)(nil)).Elem()
	table := &enumTable{
		values: make(map[string]reflect.Value, len(members)),
		names:  make(map[any]string, len(members)),
	}
	for name, v := range members {
		table.values[name] = reflect.ValueOf(v)
		table.names[v] = name
	}
	enums.Store(t, table)
}

// IsEnum reports whether t has a registered member table.
func IsEnum(t reflect.Type) bool {
	_, ok := enums.Load(t)
	return ok
}

// EnumValue resolves a member name for an enum type.
func EnumValue(t reflect.Type, name string) (v reflect.Value, err error) {
	table, ok := enums.Load(t)
	if !ok {
		err = errs.Contract("type %s is not a registered enum", t)
		return
	}
	if v, ok = table.values[name]; !ok {
		err = errs.Syntax("no member %q in enum %s", name, t)
	}
	return
}

// EnumName returns the declared member name of an enum value.
func EnumName(v reflect.Value) (name string, err error) {
	table, ok := enums.Load(v.Type())
	if !ok {
		err = errs.Contract("type %s is not a registered enum", v.Type())
		return
	}
	if name, ok = table.names[v.Interface()]; !ok {
		err = errs.Syntax("value %v is not a member of enum %s", v, v.Type())
	}
	return
}
