package binder

import (
	"reflect"

	"jsonbind.dev/convert"
	"jsonbind.dev/errs"
	"jsonbind.dev/log"
	"jsonbind.dev/names"
	"jsonbind.dev/types"
)

// Object decodes a JSON object into a struct through its schema. Properties
// without a matching field are logged and skipped, and field values that
// cannot be assigned are logged and skipped too; only malformed input and
// contract violations abort the parse.
type Object struct {
	requested reflect.Type
	schema    *types.Schema
	elem      reflect.Value
	null      bool

	property string
	field    types.Field
	fieldOK  bool
}

// NewObject creates a sink for a struct or pointer-to-struct target.
func NewObject(t reflect.Type) (o *Object, err error) {
	st := types.Deref(t)
	if st.Kind() != reflect.Struct {
		return nil, errs.Contract("object sink needs a struct target, got %s", t)
	}
	return &Object{
		requested: t,
		schema:    types.SchemaOf(st),
		elem:      reflect.New(st).Elem(),
	}, nil
}

func (o *Object) Type() reflect.Type { return o.requested }

// SetFieldName resolves the next property against the schema. Wire names in
// dash notation map to their camel case member form first.
func (o *Object) SetFieldName(name string) {
	o.property = names.ToMemberName(name)
	o.field, o.fieldOK = o.schema.Field(o.property)
}

// ValueType returns the declared type of the pending field, nil when the
// property has no field and the value should be parsed dynamically and
// dropped.
func (o *Object) ValueType() reflect.Type {
	if !o.fieldOK {
		return types.Any()
	}
	return o.field.Type
}

func (o *Object) SetValue(v any) error {
	if !o.fieldOK {
		log.W.F("ignoring unknown property %q on %s", o.property, o.schema.Type)
		return nil
	}
	if v == nil {
		// null leaves the field at its zero value
		return nil
	}
	cv, err := convert.ToValue(v, o.field.Type)
	if err != nil {
		if errs.IsSyntax(err) || errs.IsContract(err) {
			return err
		}
		log.E.F("cannot set field %q of %s: %v", o.property, o.schema.Type, err)
		return nil
	}
	o.elem.FieldByIndex(o.field.Index).Set(cv)
	return nil
}

// SetNull marks the whole object as the null literal.
func (o *Object) SetNull() { o.null = true }

// Set rejects scalars; an object target only takes null or an object.
func (o *Object) Set(v any) error {
	if v == nil {
		o.null = true
		return nil
	}
	return errs.Syntax("unexpected scalar %v for object target %s", v, o.requested)
}

func (o *Object) Instance() (any, error) {
	if o.null {
		return reflect.Zero(o.requested).Interface(), nil
	}
	if o.requested.Kind() == reflect.Pointer {
		return o.elem.Addr().Interface(), nil
	}
	return o.elem.Interface(), nil
}
