// Package convert coerces lexical scalars into typed values, and renders
// the inverse forms the serializer needs for date-likes. Inputs that are
// already typed, or nil, pass through untouched.
package convert

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"jsonbind.dev/errs"
	"jsonbind.dev/ints"
	"jsonbind.dev/types"
)

// Literal is a bare (unquoted) scalar read from the stream: true, false,
// null or a number. Quoted strings arrive as plain string. The distinction
// only matters for dynamic (any) targets, where the lexical shape decides
// the runtime type; typed targets coerce both forms identically.
type Literal string

var (
	bigFloatType = reflect.TypeOf(big.Float{})
	anyType      = types.Any()
)

// ToValue coerces raw into a value of type t. Raw may be nil (zero value of
// t), an already-typed value (passed through when assignable), a string or
// a Literal. Syntax errors come back for scalars that cannot be coerced;
// plain errors signal incompatible already-typed values, which the sinks
// absorb as best-effort mismatches.
func ToValue(raw any, t reflect.Type) (v reflect.Value, err error) {
	if raw == nil {
		return reflect.Zero(t), nil
	}
	var text string
	var bare bool
	switch s := raw.(type) {
	case string:
		text = s
	case Literal:
		text, bare = string(s), true
	default:
		rv := reflect.ValueOf(raw)
		if rv.Type().AssignableTo(t) {
			return rv, nil
		}
		return v, fmt.Errorf("value of type %s is not assignable to %s", rv.Type(), t)
	}

	if t == anyType {
		return dynamicValue(text, bare), nil
	}
	if t.Kind() == reflect.Pointer {
		var inner reflect.Value
		if inner, err = ToValue(raw, t.Elem()); err != nil {
			return
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(inner)
		return p, nil
	}

	switch {
	case types.IsEnum(t):
		return parseEnum(text, t)
	case types.IsChar(t):
		return parseChar(text, t)
	case types.IsDate(t):
		return parseDate(text, t)
	case types.IsNumber(t):
		return parseNumber(text, t)
	case types.IsBoolean(t):
		return reflect.ValueOf(parseBoolean(text)).Convert(t), nil
	case t.Kind() == reflect.String:
		return reflect.ValueOf(text).Convert(t), nil
	}
	return v, fmt.Errorf("cannot coerce scalar %q into %s", text, t)
}

// dynamicValue types a scalar for an any target by its lexical shape.
func dynamicValue(text string, bare bool) reflect.Value {
	if bare {
		switch text {
		case "true":
			return reflect.ValueOf(true)
		case "false":
			return reflect.ValueOf(false)
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return reflect.ValueOf(f)
		}
	}
	return reflect.ValueOf(text)
}

func parseEnum(text string, t reflect.Type) (v reflect.Value, err error) {
	if text == "" {
		return reflect.Zero(t), nil
	}
	return types.EnumValue(t, text)
}

func parseChar(text string, t reflect.Type) (v reflect.Value, err error) {
	runes := []rune(text)
	if len(runes) != 1 {
		err = errs.Syntax("trying to convert string %q into a single character", text)
		return
	}
	return reflect.ValueOf(types.Char(runes[0])).Convert(t), nil
}

func parseBoolean(text string) bool {
	switch strings.ToLower(text) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

func parseNumber(text string, t reflect.Type) (v reflect.Value, err error) {
	if text == "" {
		return reflect.Zero(t), nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		// converting through a double loses precision beyond the 53 bit
		// mantissa, so whole literals parse directly as integers
		if !strings.ContainsRune(text, '.') {
			var i int64
			if i, err = ints.ParseInt(text); err != nil {
				return
			}
			return reflect.ValueOf(i).Convert(t), nil
		}
	case reflect.Uint, reflect.Uint64:
		if !strings.ContainsRune(text, '.') {
			var u uint64
			if u, err = ints.ParseUint(text); err != nil {
				return
			}
			return reflect.ValueOf(u).Convert(t), nil
		}
	}
	var f float64
	if f, err = parseDouble(text); err != nil {
		return
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(int64(f)).Convert(t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(uint64(f)).Convert(t), nil
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(f).Convert(t), nil
	}
	if t == bigFloatType {
		return reflect.ValueOf(*big.NewFloat(f)), nil
	}
	err = errs.Contract("unsupported numeric type %s", t)
	return
}

// parseDouble is the hex-aware float intermediate every numeric kind except
// the exact 64 bit integer path narrows from.
func parseDouble(text string) (f float64, err error) {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		var u uint64
		if u, err = ints.ParseUint(text); err != nil {
			return
		}
		return float64(u), nil
	}
	if f, err = strconv.ParseFloat(text, 64); err != nil {
		err = errs.Syntax("invalid number %q", text)
	}
	return
}
