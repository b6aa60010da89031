// Package serializer renders Go values as JSON text onto a buffered writer.
// Structs render through their schema, enums as member names, characters as
// one rune strings and date-likes in the fixed timestamp form. Reference
// cycles are cut by an identity stack: a value already being rendered on the
// current path becomes null instead of recursing forever.
package serializer

import (
	"bufio"
	"io"
	"math/big"
	"reflect"
	"strconv"

	"jsonbind.dev/convert"
	"jsonbind.dev/escape"
	"jsonbind.dev/ints"
	"jsonbind.dev/log"
	"jsonbind.dev/types"
)

var bigFloatType = reflect.TypeOf(big.Float{})

// T is a single use serializer: create one per Serialize call site. The
// identity stack empties again as rendering unwinds, so a zero value is
// ready for reuse after every successful call.
type T struct {
	w            *bufio.Writer
	includeClass bool
	stack        []ref
	scratch      []byte
}

// ref is the identity of a value on the rendering path. The type is part of
// the identity because a struct and its first field share an address.
type ref struct {
	ptr uintptr
	typ reflect.Type
}

func New() *T {
	return &T{}
}

// NewTagged creates a serializer that opens the outermost object with a
// class tag, so the peer can decode without requesting a type.
func NewTagged() *T {
	return &T{includeClass: true}
}

// Serialize renders one value onto the writer. The writer is flushed but
// never closed; the caller owns its lifecycle.
func (s *T) Serialize(w io.Writer, value any) (err error) {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	s.w = bw
	if err = s.serialize(reflect.ValueOf(value)); err != nil {
		return
	}
	return s.w.Flush()
}

func (s *T) serialize(v reflect.Value) (err error) {
	if !v.IsValid() {
		return s.literal("null")
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return s.literal("null")
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return s.literal("null")
		}
		id := ref{ptr: v.Pointer(), typ: v.Type()}
		if s.onStack(id) {
			return s.literal("null")
		}
		s.stack = append(s.stack, id)
		defer func() { s.stack = s.stack[:len(s.stack)-1] }()
	}

	if types.IsEnum(v.Type()) {
		return s.writeEnum(v)
	}
	switch v.Kind() {
	case reflect.Pointer:
		return s.serialize(v.Elem())
	case reflect.Bool:
		if v.Bool() {
			return s.literal("true")
		}
		return s.literal("false")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		return s.write(ints.AppendInt(s.buf(), v.Int()))
	case reflect.Int32:
		if v.Type() == types.CharType() {
			return s.writeChar(rune(v.Int()))
		}
		return s.write(ints.AppendInt(s.buf(), v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return s.write(ints.AppendUint(s.buf(), v.Uint()))
	case reflect.Float32:
		return s.write(strconv.AppendFloat(s.buf(), v.Float(), 'g', -1, 32))
	case reflect.Float64:
		return s.write(strconv.AppendFloat(s.buf(), v.Float(), 'g', -1, 64))
	case reflect.String:
		return s.write(escape.AppendQuotedString(s.buf(), v.String()))
	case reflect.Slice, reflect.Array:
		return s.writeArray(v)
	case reflect.Map:
		return s.writeMap(v)
	case reflect.Struct:
		switch {
		case v.Type() == bigFloatType:
			bf := v.Interface().(big.Float)
			return s.write(append(s.buf(), (&bf).Text('g', -1)...))
		case types.IsDate(v.Type()):
			return s.write(escape.AppendQuoted(s.buf(),
				convert.AppendDate(nil, convert.DateValue(v))))
		}
		return s.writeObject(v)
	}
	log.W.F("cannot serialize a value of type %s, writing null", v.Type())
	return s.literal("null")
}

func (s *T) writeObject(v reflect.Value) (err error) {
	if err = s.w.WriteByte('{'); err != nil {
		return
	}
	first := true
	if s.includeClass {
		// only the outermost object carries the tag
		s.includeClass = false
		name, ok := types.NameOf(v.Type())
		if !ok {
			name = v.Type().String()
		}
		if err = s.write(escape.AppendQuotedString(s.buf(), "class")); err != nil {
			return
		}
		if err = s.w.WriteByte(':'); err != nil {
			return
		}
		if err = s.write(escape.AppendQuotedString(s.buf(), name)); err != nil {
			return
		}
		first = false
	}
	schema := types.SchemaOf(v.Type())
	for _, f := range schema.Fields {
		if !first {
			if err = s.w.WriteByte(','); err != nil {
				return
			}
		}
		first = false
		if err = s.write(escape.AppendQuotedString(s.buf(), f.Property)); err != nil {
			return
		}
		if err = s.w.WriteByte(':'); err != nil {
			return
		}
		if err = s.serialize(v.FieldByIndex(f.Index)); err != nil {
			return
		}
	}
	return s.w.WriteByte('}')
}

func (s *T) writeArray(v reflect.Value) (err error) {
	if err = s.w.WriteByte('['); err != nil {
		return
	}
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			if err = s.w.WriteByte(','); err != nil {
				return
			}
		}
		if err = s.serialize(v.Index(i)); err != nil {
			return
		}
	}
	return s.w.WriteByte(']')
}

func (s *T) writeMap(v reflect.Value) (err error) {
	if err = s.w.WriteByte('{'); err != nil {
		return
	}
	iter := v.MapRange()
	first := true
	for iter.Next() {
		if !first {
			if err = s.w.WriteByte(','); err != nil {
				return
			}
		}
		first = false
		if err = s.writeKey(iter.Key()); err != nil {
			return
		}
		if err = s.w.WriteByte(':'); err != nil {
			return
		}
		if err = s.serialize(iter.Value()); err != nil {
			return
		}
	}
	return s.w.WriteByte('}')
}

// writeKey renders a map key; scalar and nil keys always quote so the
// output stays an object with string names.
func (s *T) writeKey(k reflect.Value) (err error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return s.write(escape.AppendQuotedString(s.buf(), "null"))
		}
		k = k.Elem()
	}
	if k.Kind() == reflect.Pointer && k.IsNil() {
		return s.write(escape.AppendQuotedString(s.buf(), "null"))
	}
	if k.Kind() == reflect.String {
		return s.write(escape.AppendQuotedString(s.buf(), k.String()))
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.write(escape.AppendQuoted(s.buf(), ints.AppendInt(nil, k.Int())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return s.write(escape.AppendQuoted(s.buf(), ints.AppendUint(nil, k.Uint())))
	}
	return s.serialize(k)
}

func (s *T) writeEnum(v reflect.Value) (err error) {
	name, err := types.EnumName(v)
	if err != nil {
		log.W.F("cannot serialize enum value: %v", err)
		return s.literal("null")
	}
	return s.write(escape.AppendQuotedString(s.buf(), name))
}

func (s *T) writeChar(c rune) error {
	return s.write(escape.AppendQuotedString(s.buf(), string(c)))
}

// onStack reports whether the identity is an ancestor on the current
// rendering path.
func (s *T) onStack(id ref) bool {
	for _, r := range s.stack {
		if r == id {
			return true
		}
	}
	return false
}

func (s *T) literal(lit string) (err error) {
	_, err = s.w.WriteString(lit)
	return
}

func (s *T) write(b []byte) (err error) {
	_, err = s.w.Write(b)
	s.scratch = b[:0]
	return
}

func (s *T) buf() []byte {
	return s.scratch[:0]
}
