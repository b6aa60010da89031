package binder

import (
	"reflect"

	"jsonbind.dev/convert"
)

// Primitive decodes a single scalar: booleans, numbers, characters, enums,
// date-likes, strings and the dynamic any target.
type Primitive struct {
	requested reflect.Type
	val       reflect.Value
	set       bool
}

func NewPrimitive(t reflect.Type) *Primitive {
	return &Primitive{requested: t}
}

func (p *Primitive) Type() reflect.Type { return p.requested }

func (p *Primitive) Set(v any) (err error) {
	if p.val, err = convert.ToValue(v, p.requested); err != nil {
		return
	}
	p.set = true
	return
}

func (p *Primitive) Instance() (any, error) {
	if !p.set {
		return reflect.Zero(p.requested).Interface(), nil
	}
	return p.val.Interface(), nil
}

// Missing is the sink for an unknown target: everything is accepted and
// discarded. The parser starts with it when no type was requested, so an
// inbound class tag can still swap in the real sink, and the binder uses it
// to drain values nothing is waiting for.
type Missing struct{}

func (*Missing) Type() reflect.Type      { return nil }
func (*Missing) Set(any) error           { return nil }
func (*Missing) Instance() (any, error)  { return nil, nil }
func (*Missing) SetFieldName(string)     {}
func (*Missing) ValueType() reflect.Type { return nil }
func (*Missing) SetValue(any) error      { return nil }
