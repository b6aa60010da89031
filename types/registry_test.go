package types

import (
	"reflect"
	"testing"
	"time"

	"jsonbind.dev/errs"
)

type invoice struct {
	Number string
}

type lineSet interface {
	Count() int
}

type lines []string

func (l lines) Count() int { return len(l) }

type direction int

const (
	north direction = iota
	south
)

func init() {
	Register("invoice", invoice{})
	RegisterContainer((*lineSet)(nil), lines(nil))
	RegisterEnum(map[string]direction{"NORTH": north, "SOUTH": south})
}

func TestClassRegistry(t *testing.T) {
	got, err := Load("invoice")
	if err != nil {
		t.Fatal(err)
	}
	if got != reflect.TypeOf(invoice{}) {
		t.Errorf("expect invoice type, got %v", got)
	}
	if name, ok := NameOf(reflect.TypeOf(invoice{})); !ok || name != "invoice" {
		t.Errorf("expect reverse lookup, got %q, %v", name, ok)
	}
	if _, err = Load("unheard-of"); !errs.IsSyntax(err) {
		t.Errorf("unknown class names come from the wire, expect syntax error, got %v", err)
	}
}

func TestContainerTable(t *testing.T) {
	ct, ok := ContainerFor(reflect.TypeOf((*lineSet)(nil)).Elem())
	if !ok {
		t.Fatal("registered container not found")
	}
	if ct != reflect.TypeOf(lines(nil)) {
		t.Errorf("expect lines, got %v", ct)
	}
	if _, ok = ContainerFor(reflect.TypeOf((*error)(nil)).Elem()); ok {
		t.Error("unregistered interface must miss")
	}
}

func TestEnumTable(t *testing.T) {
	if !IsEnum(reflect.TypeOf(north)) {
		t.Fatal("direction must be an enum")
	}
	v, err := EnumValue(reflect.TypeOf(north), "SOUTH")
	if err != nil {
		t.Fatal(err)
	}
	if v.Interface() != south {
		t.Errorf("expect south, got %v", v)
	}
	if _, err = EnumValue(reflect.TypeOf(north), "WEST"); !errs.IsSyntax(err) {
		t.Errorf("expect syntax error for unknown member, got %v", err)
	}
	name, err := EnumName(reflect.ValueOf(south))
	if err != nil || name != "SOUTH" {
		t.Errorf("expect SOUTH, got %q, %v", name, err)
	}
	if _, err = EnumValue(reflect.TypeOf(0), "SOUTH"); !errs.IsContract(err) {
		t.Errorf("expect contract error for unregistered enum, got %v", err)
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsDate(reflect.TypeOf(time.Time{})) || !IsDate(reflect.TypeOf(&time.Time{})) {
		t.Error("time.Time and *time.Time are dates")
	}
	if IsDate(reflect.TypeOf(invoice{})) {
		t.Error("ordinary structs are not dates")
	}
	if !IsChar(reflect.TypeOf(Char('x'))) || IsChar(reflect.TypeOf('x')) {
		t.Error("Char is the only character kind, a bare rune is a number")
	}
	if !IsNumber(reflect.TypeOf('x')) {
		t.Error("a rune is an int32 and counts as a number")
	}
	if IsNumber(reflect.TypeOf(Char('x'))) {
		t.Error("Char must not count as a number")
	}
	if !IsPrimitiveLike(Any()) {
		t.Error("any is primitive-like, the sink types it dynamically")
	}
	if IsPrimitiveLike(reflect.TypeOf(invoice{})) {
		t.Error("structs are not primitive-like")
	}
}
