// Package parser drives the lexer token stream through a finite state
// machine, feeding binder sinks until a complete instance of the requested
// type materialises. Nested containers parse by recursion: the opener token
// goes back to the lexer and a fresh state machine pass runs against the
// element sink.
package parser

import (
	"io"
	"reflect"

	"jsonbind.dev/binder"
	"jsonbind.dev/errs"
	"jsonbind.dev/lexer"
	"jsonbind.dev/log"
	"jsonbind.dev/types"
)

type state int

const (
	none state = iota
	waitForNameOrClass
	waitForName
	waitForColon
	waitForValue
	waitForCommaOrRightBrace
	waitForKey
	waitForItem
	waitForCommaOrRightSquare
)

var (
	mapStringAny = reflect.TypeOf(map[string]any(nil))
	sliceAny     = reflect.TypeOf([]any(nil))
)

// T is a reusable parser. It is not safe for concurrent use; create one per
// goroutine.
type T struct {
	lx    *lexer.T
	state state
}

func New() *T {
	return &T{}
}

// Parse reads one complete JSON value from the reader and binds it to the
// requested type. A nil type defers the choice to an inbound class tag; the
// any type binds dynamically from the shape of the input. I/O errors come
// back as they are, malformed input as syntax errors and unsupported target
// shapes as contract errors.
func (p *T) Parse(r io.Reader, t reflect.Type) (v any, err error) {
	p.lx = lexer.New(r)
	p.state = none
	return p.parse(t)
}

func (p *T) parse(t reflect.Type) (v any, err error) {
	if t == types.Any() {
		if t, err = p.resolveDynamic(); err != nil {
			return
		}
	}
	var value binder.Value
	if value, err = binder.New(t); err != nil {
		return
	}

tokens:
	for {
		var tok lexer.Token
		if tok, err = p.lx.Read(); err != nil {
			return
		}
		switch p.state {
		case none:
			switch tok.Kind {
			case lexer.Value, lexer.Item:
				if err = p.setWhole(value, tok.Payload()); err != nil {
					return
				}
				break tokens
			case lexer.LeftBrace:
				if _, ok := value.(*binder.Map); ok {
					p.state = waitForKey
				} else {
					p.state = waitForNameOrClass
				}
			case lexer.LeftSquare:
				p.state = waitForItem
			case lexer.RightSquare:
				// an empty array closing right away; hand the bracket back
				// for the caller's state machine
				p.lx.Unread(tok)
				break tokens
			case lexer.EOF:
				err = errs.Syntax("no data available for parsing")
				return
			default:
				err = errs.SyntaxAt(tok.Offset, "expect a value, got %s", tok)
				return
			}

		case waitForNameOrClass:
			if tok.Kind == lexer.Name && tok.Text == "class" {
				if value, err = p.reviseTarget(value, tok); err != nil {
					return
				}
				p.state = waitForCommaOrRightBrace
				continue
			}
			p.state = waitForName
			fallthrough

		case waitForName:
			switch tok.Kind {
			case lexer.RightBrace:
				break tokens
			case lexer.Name:
				ns, ok := value.(binder.NameSetter)
				if !ok {
					err = errs.SyntaxAt(tok.Offset, "unexpected property %q for target %s", tok.Text, value.Type())
					return
				}
				ns.SetFieldName(tok.Text)
				p.state = waitForColon
			default:
				err = errs.SyntaxAt(tok.Offset, "expect NAME or RIGHT_BRACE, got %s", tok)
				return
			}

		case waitForColon:
			if tok.Kind != lexer.Colon {
				err = errs.SyntaxAt(tok.Offset, "expect COLON, got %s", tok)
				return
			}
			p.state = waitForValue

		case waitForValue:
			fs, ok := value.(binder.FieldSetter)
			if !ok {
				err = errs.SyntaxAt(tok.Offset, "value in object position for target %s", value.Type())
				return
			}
			switch tok.Kind {
			case lexer.LeftBrace, lexer.LeftSquare:
				p.lx.Unread(tok)
				p.state = none
				var nested any
				if nested, err = p.parse(fs.ValueType()); err != nil {
					return
				}
				if err = fs.SetValue(nested); err != nil {
					return
				}
				p.state = waitForCommaOrRightBrace
			case lexer.Value:
				if err = fs.SetValue(tok.Payload()); err != nil {
					return
				}
				p.state = waitForCommaOrRightBrace
			default:
				err = errs.SyntaxAt(tok.Offset, "expect VALUE, LEFT_BRACE or LEFT_SQUARE, got %s", tok)
				return
			}

		case waitForCommaOrRightBrace:
			switch tok.Kind {
			case lexer.Comma:
				if _, ok := value.(*binder.Map); ok {
					p.state = waitForKey
				} else {
					p.state = waitForName
				}
			case lexer.RightBrace:
				break tokens
			default:
				err = errs.SyntaxAt(tok.Offset, "expect COMMA or RIGHT_BRACE, got %s", tok)
				return
			}

		case waitForKey:
			mv, ok := value.(*binder.Map)
			if !ok {
				err = errs.SyntaxAt(tok.Offset, "key position without a map target")
				return
			}
			switch tok.Kind {
			case lexer.RightBrace:
				break tokens
			case lexer.Name:
				mv.SetKey(tok.Payload())
				p.state = waitForColon
			case lexer.LeftBrace:
				// keys are names or nested objects, never arrays
				p.lx.Unread(tok)
				p.state = none
				var key any
				if key, err = p.parse(mv.KeyType()); err != nil {
					return
				}
				mv.SetKey(key)
				p.state = waitForColon
			default:
				err = errs.SyntaxAt(tok.Offset, "expect a key, got %s", tok)
				return
			}

		case waitForItem:
			switch tok.Kind {
			case lexer.RightSquare:
				break tokens
			case lexer.Item:
				if err = value.Set(tok.Payload()); err != nil {
					return
				}
				p.state = waitForCommaOrRightSquare
			case lexer.LeftBrace, lexer.LeftSquare:
				p.lx.Unread(tok)
				p.state = none
				var item any
				if item, err = p.parse(value.Type()); err != nil {
					return
				}
				if err = value.Set(item); err != nil {
					return
				}
				p.state = waitForCommaOrRightSquare
			default:
				err = errs.SyntaxAt(tok.Offset, "expect an item, got %s", tok)
				return
			}

		case waitForCommaOrRightSquare:
			switch tok.Kind {
			case lexer.Comma:
				p.state = waitForItem
			case lexer.RightSquare:
				break tokens
			default:
				err = errs.SyntaxAt(tok.Offset, "expect COMMA or RIGHT_SQUARE, got %s", tok)
				return
			}
		}
	}
	p.state = none
	return value.Instance()
}

// setWhole delivers a top level scalar, routing the null literal to the
// container sinks that tell a null whole apart from a null element.
func (p *T) setWhole(value binder.Value, payload any) error {
	if payload == nil {
		if n, ok := value.(binder.Nuller); ok {
			n.SetNull()
			return nil
		}
	}
	return value.Set(payload)
}

// resolveDynamic peeks one token to choose the concrete dynamic target: an
// object becomes map[string]any, an array []any, and scalars bind straight
// to the any primitive sink.
func (p *T) resolveDynamic() (t reflect.Type, err error) {
	var tok lexer.Token
	if tok, err = p.lx.Read(); err != nil {
		return
	}
	p.lx.Unread(tok)
	switch tok.Kind {
	case lexer.LeftBrace:
		return mapStringAny, nil
	case lexer.LeftSquare:
		return sliceAny, nil
	}
	return types.Any(), nil
}

// reviseTarget consumes the class tag's colon and value, looks the name up
// in the registry and replaces the sink. A class tag is only legal when no
// explicit type was requested.
func (p *T) reviseTarget(value binder.Value, at lexer.Token) (revised binder.Value, err error) {
	if _, ok := value.(*binder.Missing); !ok {
		err = errs.SyntaxAt(at.Offset, "illegal class tag on a stream parsed with an explicit target type")
		return
	}
	var tok lexer.Token
	if tok, err = p.lx.Read(); err != nil {
		return
	}
	if tok.Kind != lexer.Colon {
		err = errs.SyntaxAt(tok.Offset, "expect COLON after class tag, got %s", tok)
		return
	}
	if tok, err = p.lx.Read(); err != nil {
		return
	}
	if tok.Kind != lexer.Value {
		err = errs.SyntaxAt(tok.Offset, "expect a class name, got %s", tok)
		return
	}
	var t reflect.Type
	if t, err = types.Load(tok.Text); err != nil {
		return
	}
	log.T.F("class tag selected target %s", t)
	return binder.New(t)
}
