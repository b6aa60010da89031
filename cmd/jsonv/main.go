// jsonv validates JSON documents and re-renders them in the codec's
// canonical form. It reads from files given as arguments or from stdin, and
// writes the normalised document to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"go-simpler.org/env"

	jsonbind "jsonbind.dev"
	"jsonbind.dev/chk"
	"jsonbind.dev/lol"
	"jsonbind.dev/types"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"off, fatal, error, warn, info, debug, trace"`
	Quiet    bool   `env:"QUIET" default:"false" usage:"validate only, print nothing on success"`
}

func fail(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func main() {
	c := &config{}
	if err := env.Load(c, nil); chk.E(err) {
		fail("cannot read environment: %v", err)
	}
	lol.SetLogLevel(c.LogLevel)
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "help":
			fmt.Printf(`jsonv: validate and normalise JSON

    jsonv [file...]

reads the given files, or stdin when none are given, parses each document
and prints it back in canonical form. QUIET=true suppresses the output and
only reports errors.

environment:

`)
			env.Usage(c, os.Stdout, nil)
			os.Exit(0)
		case "version":
			fmt.Println(jsonbind.Version)
			os.Exit(0)
		}
	}
	if len(os.Args) < 2 {
		run(c, os.Stdin, "stdin")
		return
	}
	for _, name := range os.Args[1:] {
		f, err := os.Open(name)
		if chk.E(err) {
			fail("cannot open %s: %v", name, err)
		}
		run(c, f, name)
		_ = f.Close()
	}
}

func run(c *config, r io.Reader, name string) {
	v, err := jsonbind.Parse(r, types.Any())
	if chk.E(err) {
		fail("%s: %v", name, err)
	}
	if c.Quiet {
		return
	}
	if err = jsonbind.Stringify(os.Stdout, v); chk.E(err) {
		fail("%s: %v", name, err)
	}
	fmt.Println()
}
