package binder

import (
	"reflect"

	"jsonbind.dev/convert"
	"jsonbind.dev/errs"
	"jsonbind.dev/log"
)

// Array decodes a JSON array into a slice or fixed size array. Items buffer
// untyped and convert late, when the instance materialises, so the element
// count is known before any element storage is committed.
type Array struct {
	requested reflect.Type
	items     []any
	null      bool
}

// NewArray creates a sink for a slice or array target.
func NewArray(t reflect.Type) (a *Array, err error) {
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return nil, errs.Contract("array sink needs a slice or array target, got %s", t)
	}
	return &Array{requested: t}, nil
}

func (a *Array) Type() reflect.Type { return a.requested.Elem() }

// SetNull marks the whole array as the null literal, as opposed to a null
// item delivered through Set.
func (a *Array) SetNull() { a.null = true }

func (a *Array) Set(v any) error {
	a.items = append(a.items, v)
	return nil
}

func (a *Array) Instance() (any, error) {
	if a.null {
		return reflect.Zero(a.requested).Interface(), nil
	}
	n := len(a.items)
	var out reflect.Value
	if a.requested.Kind() == reflect.Array {
		if n > a.requested.Len() {
			log.W.F("dropping %d items beyond the capacity of %s", n-a.requested.Len(), a.requested)
			n = a.requested.Len()
		}
		out = reflect.New(a.requested).Elem()
	} else {
		out = reflect.MakeSlice(a.requested, n, n)
	}
	elem := a.requested.Elem()
	for i := 0; i < n; i++ {
		if a.items[i] == nil {
			continue
		}
		cv, err := convert.ToValue(a.items[i], elem)
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(cv)
	}
	return out.Interface(), nil
}

// Collection decodes a JSON array on behalf of an abstract collection
// interface, filling the registered concrete slice type. Unlike Array it
// converts eagerly, as items arrive.
type Collection struct {
	requested reflect.Type
	slice     reflect.Value
	null      bool
}

// NewCollection creates a sink filling a concrete slice on behalf of the
// requested interface.
func NewCollection(requested, concrete reflect.Type) (c *Collection, err error) {
	if concrete.Kind() != reflect.Slice {
		return nil, errs.Contract("collection sink needs a slice target, got %s", concrete)
	}
	if !concrete.AssignableTo(requested) {
		return nil, errs.Contract("container %s does not satisfy %s", concrete, requested)
	}
	return &Collection{
		requested: requested,
		slice:     reflect.MakeSlice(concrete, 0, 0),
	}, nil
}

func (c *Collection) Type() reflect.Type { return c.slice.Type().Elem() }

// SetNull marks the whole collection as the null literal.
func (c *Collection) SetNull() { c.null = true }

func (c *Collection) Set(v any) error {
	cv, err := convert.ToValue(v, c.slice.Type().Elem())
	if err != nil {
		return err
	}
	c.slice = reflect.Append(c.slice, cv)
	return nil
}

func (c *Collection) Instance() (any, error) {
	if c.null {
		return reflect.Zero(c.requested).Interface(), nil
	}
	return c.slice.Interface(), nil
}
