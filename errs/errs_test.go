package errs

import (
	"fmt"
	"io"
	"testing"
)

func TestSyntaxOffset(t *testing.T) {
	err := SyntaxAt(17, "unexpected %q", "}")
	if err.Error() != `unexpected "}" at offset 17` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if Syntax("no position").Error() != "no position" {
		t.Error("offset-less syntax errors must not mention an offset")
	}
}

func TestPredicates(t *testing.T) {
	if !IsSyntax(Syntax("x")) || IsContract(Syntax("x")) {
		t.Error("syntax error misclassified")
	}
	if !IsContract(Contract("x")) || IsSyntax(Contract("x")) {
		t.Error("contract error misclassified")
	}
	if IsSyntax(io.ErrUnexpectedEOF) || IsContract(io.ErrUnexpectedEOF) {
		t.Error("I/O errors belong to neither category")
	}
}

func TestWrappedPredicates(t *testing.T) {
	wrapped := fmt.Errorf("while parsing: %w", SyntaxAt(3, "bad token"))
	if !IsSyntax(wrapped) {
		t.Error("predicates must see through wrapping")
	}
}
