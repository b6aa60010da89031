// Package jsonbind is a stream oriented JSON codec binding text to typed Go
// values and back. Decoding runs a character lexer and a state machine
// parser against value sinks picked from the requested type; encoding walks
// values with reflection through cached struct schemas. Abstract targets are
// served by explicit registries: class tags, enum members and container
// implementations are all declared up front, nothing is discovered at
// runtime.
package jsonbind

import (
	"io"
	"reflect"
	"strings"

	"jsonbind.dev/parser"
	"jsonbind.dev/serializer"
	"jsonbind.dev/types"
)

// Parse reads one JSON value from the reader and binds it to the requested
// type. A nil type lets an inbound class tag choose the target; types.Any()
// binds dynamically to maps, slices and scalars shaped by the input.
func Parse(r io.Reader, t reflect.Type) (any, error) {
	return parser.New().Parse(r, t)
}

// ParseString is Parse over an in-memory document.
func ParseString(s string, t reflect.Type) (any, error) {
	return Parse(strings.NewReader(s), t)
}

// ParseAs binds one JSON value to the type parameter. Null decodes to the
// zero value.
func ParseAs[V any](r io.Reader) (v V, err error) {
	t := reflect.TypeOf((*V)(nil)).Elem()
	var res any
	if res, err = parser.New().Parse(r, t); err != nil {
		return
	}
	if res == nil {
		return
	}
	return res.(V), nil
}

// Stringify renders a value as JSON onto the writer. The writer is flushed,
// never closed.
func Stringify(w io.Writer, v any) error {
	return serializer.New().Serialize(w, v)
}

// StringifyTagged renders like Stringify but opens the outermost object with
// a class tag so a peer can decode without requesting a type. Register the
// value's type first to control the tag.
func StringifyTagged(w io.Writer, v any) error {
	return serializer.NewTagged().Serialize(w, v)
}

// String renders a value as an in-memory JSON document.
func String(v any) (s string, err error) {
	var b strings.Builder
	if err = Stringify(&b, v); err != nil {
		return
	}
	return b.String(), nil
}

// Register binds a stable class tag name to the prototype's type for both
// directions of the wire.
func Register(name string, prototype any) {
	types.Register(name, prototype)
}

// RegisterEnum declares the wire names of an enum type's members.
func RegisterEnum[E comparable](members map[string]E) {
	types.RegisterEnum(members)
}

// RegisterContainer binds an abstract collection or map interface to the
// concrete type instantiated for it during decoding.
func RegisterContainer(iface, concrete any) {
	types.RegisterContainer(iface, concrete)
}
