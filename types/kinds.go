// Package types holds the process-wide type knowledge the codec binds
// against: kind predicates, the class tag registry, the enum member tables,
// the default container table for abstract collection and map interfaces,
// and the cached struct schemas. All registries are meant to be populated
// at startup and are read-only afterwards.
package types

import (
	"math/big"
	"reflect"
	"time"
)

// Char is the carrier for the character scalar kind. Go has no char type of
// its own, so fields that must decode from a single character string and
// encode back to one declare this instead of a bare rune.
type Char rune

var (
	timeType     = reflect.TypeOf(time.Time{})
	bigFloatType = reflect.TypeOf(big.Float{})
	charType     = reflect.TypeOf(Char(0))
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
)

// Any is the empty interface type, the dynamic decode target.
func Any() reflect.Type { return anyType }

// CharType returns the reflect type of Char.
func CharType() reflect.Type { return charType }

// TimeType returns the reflect type of time.Time.
func TimeType() reflect.Type { return timeType }

// Deref strips one level of pointer, if present.
func Deref(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// IsBoolean reports a bool kind target.
func IsBoolean(t reflect.Type) bool {
	return Deref(t).Kind() == reflect.Bool
}

// IsChar reports the character kind target.
func IsChar(t reflect.Type) bool {
	return Deref(t) == charType
}

// IsNumber reports integer, unsigned, float and big.Float targets. Char is
// excluded even though its underlying type is an integer.
func IsNumber(t reflect.Type) bool {
	t = Deref(t)
	if t == nil || t == charType {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return t == bigFloatType
}

// IsDate reports time.Time and named types with a time.Time underlying.
func IsDate(t reflect.Type) bool {
	t = Deref(t)
	if t == nil {
		return false
	}
	return t == timeType || (t.Kind() == reflect.Struct && t.ConvertibleTo(timeType))
}

// IsString reports string kind targets.
func IsString(t reflect.Type) bool {
	return Deref(t).Kind() == reflect.String
}

// IsPrimitiveLike reports targets handled by the primitive sink: booleans,
// numbers, characters, enums, date-likes and strings.
func IsPrimitiveLike(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t == anyType {
		return true
	}
	return IsBoolean(t) || IsNumber(t) || IsChar(t) || IsEnum(Deref(t)) ||
		IsDate(t) || IsString(t)
}
