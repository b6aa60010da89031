package types

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"jsonbind.dev/errs"
)

// The class tag registry maps stable string identifiers to target types so
// an inbound "class" property can select the destination type without any
// dynamic code loading. Populate it explicitly at startup.

var (
	classesByName = xsync.NewMapOf[string, reflect.Type]()
	classNames    = xsync.NewMapOf[reflect.Type, string]()
)

// Register binds a stable name to the type of the prototype value. A struct
// prototype registers the struct type; pass the value, not a pointer,
// unless pointer targets are what the wire will request.
func Register(name string, prototype any) {
	t := reflect.TypeOf(prototype)
	classesByName.Store(name, t)
	classNames.Store(t, name)
}

// Load resolves a registered type name. Unknown names are syntax errors:
// they arrive from the wire, not from the caller's code.
func Load(name string) (t reflect.Type, err error) {
	var ok bool
	if t, ok = classesByName.Load(name); !ok {
		err = errs.Syntax("requested class %q not registered", name)
	}
	return
}

// NameOf returns the registered name for a type, if any.
func NameOf(t reflect.Type) (name string, ok bool) {
	return classNames.Load(t)
}

// The container table maps abstract (interface) collection and map types to
// the concrete containers the binder instantiates for them. An interface
// target with no entry is a contract error in the binder.

var containers = xsync.NewMapOf[reflect.Type, reflect.Type]()

// RegisterContainer binds an interface type to a concrete slice or map type
// used to back it during decoding. Both arguments are prototypes: pass
// (*Iface)(nil) for the interface and a zero concrete value.
func RegisterContainer(iface, concrete any) {
	it := reflect.TypeOf(iface)
	if it != nil && it.Kind() == reflect.Pointer && it.Elem().Kind() == reflect.Interface {
		it = it.Elem()
	}
	ct := reflect.TypeOf(concrete)
	containers.Store(it, ct)
}

// ContainerFor resolves the concrete container registered for an interface
// type.
func ContainerFor(iface reflect.Type) (concrete reflect.Type, ok bool) {
	return containers.Load(iface)
}
