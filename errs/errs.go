// Package errs defines the error taxonomy of the codec: syntax errors for
// malformed input, contract errors for unsupported type shapes requested by
// the caller. I/O errors from the underlying streams are always propagated
// as-is and never wrapped into either category.
package errs

import (
	"errors"
	"fmt"
)

// SyntaxError signals malformed JSON text or a scalar that cannot be coerced
// into its target kind. Offset is the character offset into the stream where
// the problem was noticed, or -1 when there is no meaningful position (for
// instance a coercion failure on an already buffered scalar).
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// ContractError signals a programmer mistake: the caller requested a type
// shape the binder does not support. It indicates bad code, not bad data.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string { return e.Msg }

// Syntax creates a SyntaxError without position information.
func Syntax(format string, a ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, a...), Offset: -1}
}

// SyntaxAt creates a SyntaxError carrying the offending character offset.
func SyntaxAt(offset int, format string, a ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, a...), Offset: offset}
}

// Contract creates a ContractError.
func Contract(format string, a ...any) error {
	return &ContractError{Msg: fmt.Sprintf(format, a...)}
}

// IsSyntax reports whether err is (or wraps) a SyntaxError.
func IsSyntax(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// IsContract reports whether err is (or wraps) a ContractError.
func IsContract(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
