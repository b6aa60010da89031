package types

import (
	"reflect"
	"testing"
)

type base struct {
	ID      string
	Created int64
}

type record struct {
	base
	Name string
	note string
	Tags []string
}

type tagged struct {
	Visible string `json:"shown"`
	Hidden  string `json:"-"`
	Plain   int
}

func properties(s *Schema) (ps []string) {
	for _, f := range s.Fields {
		ps = append(ps, f.Property)
	}
	return
}

func TestSchemaOwnFieldsFirst(t *testing.T) {
	s := SchemaOf(reflect.TypeOf(record{}))
	got := properties(s)
	want := []string{"name", "tags", "id", "created"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expect %v, got %v", want, got)
	}
}

func TestSchemaPromotedIndexPaths(t *testing.T) {
	s := SchemaOf(reflect.TypeOf(record{}))
	f, ok := s.Field("id")
	if !ok {
		t.Fatal("promoted field not found")
	}
	v := reflect.ValueOf(record{base: base{ID: "r-1"}})
	if v.FieldByIndex(f.Index).String() != "r-1" {
		t.Errorf("index path does not reach the embedded field")
	}
}

func TestSchemaTags(t *testing.T) {
	s := SchemaOf(reflect.TypeOf(tagged{}))
	got := properties(s)
	want := []string{"shown", "plain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expect %v, got %v", want, got)
	}
}

func TestSchemaOwnBeforePromoted(t *testing.T) {
	type outer struct {
		Schema
		Own string
	}
	s := SchemaOf(reflect.TypeOf(outer{}))
	if s.Fields[0].Property != "own" {
		t.Errorf("own fields must precede promoted ones, got %v", properties(s))
	}
}

func TestSchemaForeignEmbeddingStops(t *testing.T) {
	type outer struct {
		reflect.StructField
		Own string
	}
	s := SchemaOf(reflect.TypeOf(outer{}))
	want := []string{"own"}
	if !reflect.DeepEqual(properties(s), want) {
		t.Errorf("foreign embedded fields must not promote, got %v", properties(s))
	}
}

func TestSchemaPointerDeref(t *testing.T) {
	a := SchemaOf(reflect.TypeOf(&record{}))
	b := SchemaOf(reflect.TypeOf(record{}))
	if a != b {
		t.Error("pointer and value types must share one schema")
	}
}
