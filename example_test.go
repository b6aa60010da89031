package jsonbind_test

import (
	"fmt"
	"reflect"
	"strings"

	jsonbind "jsonbind.dev"
)

type Server struct {
	Host    string
	Port    int
	Aliases []string
}

func ExampleParseAs() {
	src := `{"host": "db.example.com", "port": 5432, "aliases": ["primary"], "comment": "ignored"}`
	s, err := jsonbind.ParseAs[Server](strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s:%d %v\n", s.Host, s.Port, s.Aliases)
	// Output: db.example.com:5432 [primary]
}

func ExampleString() {
	s, err := jsonbind.String(Server{Host: "db", Port: 5432})
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: {"host":"db","port":5432,"aliases":null}
}

func ExampleParse_dynamic() {
	got, err := jsonbind.Parse(strings.NewReader(`[1, "two", true]`),
		reflect.TypeOf((*any)(nil)).Elem())
	if err != nil {
		panic(err)
	}
	fmt.Println(got)
	// Output: [1 two true]
}
