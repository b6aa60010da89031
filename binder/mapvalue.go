package binder

import (
	"reflect"

	"jsonbind.dev/convert"
	"jsonbind.dev/errs"
)

// Map decodes a JSON object into a map, coercing every key to the map's key
// type and every value to its value type. Duplicate keys keep the last
// value. The requested type may be an abstract interface backed by a
// registered concrete map type.
type Map struct {
	requested reflect.Type
	concrete  reflect.Type
	m         reflect.Value
	key       any
	null      bool
}

// NewMap creates a sink filling a concrete map on behalf of the requested
// type.
func NewMap(requested, concrete reflect.Type) (m *Map, err error) {
	if concrete.Kind() != reflect.Map {
		return nil, errs.Contract("map sink needs a map target, got %s", concrete)
	}
	if requested != concrete && !concrete.AssignableTo(requested) {
		return nil, errs.Contract("container %s does not satisfy %s", concrete, requested)
	}
	return &Map{
		requested: requested,
		concrete:  concrete,
		m:         reflect.MakeMap(concrete),
	}, nil
}

func (m *Map) Type() reflect.Type { return m.requested }

// KeyType is the declared key type the parser recurses with for structured
// keys.
func (m *Map) KeyType() reflect.Type { return m.concrete.Key() }

// ValueType is the declared value type of the pending entry.
func (m *Map) ValueType() reflect.Type { return m.concrete.Elem() }

// SetKey stages the key of the next entry.
func (m *Map) SetKey(k any) { m.key = k }

// SetValue completes the pending entry. Maps are strict: keys and values
// that cannot be coerced abort the parse.
func (m *Map) SetValue(v any) error {
	kv, err := convert.ToValue(m.key, m.concrete.Key())
	if err != nil {
		return err
	}
	vv, err := convert.ToValue(v, m.concrete.Elem())
	if err != nil {
		return err
	}
	m.m.SetMapIndex(kv, vv)
	return nil
}

// SetNull marks the whole map as the null literal.
func (m *Map) SetNull() { m.null = true }

func (m *Map) Set(v any) error {
	if v == nil {
		m.null = true
		return nil
	}
	return errs.Syntax("unexpected scalar %v for map target %s", v, m.requested)
}

func (m *Map) Instance() (any, error) {
	if m.null {
		return reflect.Zero(m.requested).Interface(), nil
	}
	return m.m.Interface(), nil
}
