package main

import (
	"fmt"
	"os"

	"jsonbind.dev/chk"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if chk.E(err) {
		panic(err)
	}
	defer fh.Close()
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(fh, "%04d", i)
	}
}
