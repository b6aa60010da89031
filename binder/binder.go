// Package binder builds typed instances from the scalars and sub-instances
// the parser feeds it. Each decode target gets a sink chosen by its type
// shape: structs an Object, slices and arrays an Array, registered abstract
// collections a Collection, maps a Map, scalars a Primitive, and a nil type
// the Missing placeholder that discards everything until an inbound class
// tag resolves the real target.
package binder

import (
	"reflect"

	"jsonbind.dev/errs"
	"jsonbind.dev/types"
)

// Value accumulates parse events for one decode target and materialises the
// final instance.
type Value interface {
	// Type is the element type the parser recurses with for nested
	// containers.
	Type() reflect.Type
	// Set delivers a whole value: a scalar payload, a nested instance, or
	// nil for the null literal.
	Set(v any) error
	// Instance materialises the accumulated value.
	Instance() (any, error)
}

// FieldSetter is the sink surface of the object value position: Object, Map
// and Missing implement it.
type FieldSetter interface {
	// ValueType is the declared type of the pending field, or nil when the
	// property is unknown and its value should be discarded.
	ValueType() reflect.Type
	// SetValue delivers the pending field's value.
	SetValue(v any) error
}

// NameSetter is implemented by sinks that accept property names: Object and
// Missing.
type NameSetter interface {
	SetFieldName(name string)
}

// Nuller is implemented by container sinks that distinguish a whole-value
// null from a null element delivered through Set.
type Nuller interface {
	SetNull()
}

// New picks the sink for a decode target. A nil type means the target is
// unknown and an inbound class tag may still select it.
func New(t reflect.Type) (Value, error) {
	if t == nil {
		return &Missing{}, nil
	}
	if types.IsPrimitiveLike(t) {
		return NewPrimitive(t), nil
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return NewArray(t)
	case reflect.Map:
		return NewMap(t, t)
	case reflect.Interface:
		concrete, ok := types.ContainerFor(t)
		if !ok {
			return nil, errs.Contract("no container registered for abstract type %s", t)
		}
		switch concrete.Kind() {
		case reflect.Map:
			return NewMap(t, concrete)
		case reflect.Slice:
			return NewCollection(t, concrete)
		}
		return nil, errs.Contract("container %s registered for %s is neither a map nor a slice", concrete, t)
	case reflect.Struct:
		return NewObject(t)
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return NewObject(t)
		}
	}
	return nil, errs.Contract("unsupported decode target %s", t)
}
