// Package lexer turns a character stream into JSON tokens. It is
// context-sensitive: a frame stack mirrors the open containers so a string
// classifies as NAME in an object's name position, ITEM inside an array and
// VALUE everywhere else. One token of pushback lets the parser hand a
// container opener back before recursing.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"jsonbind.dev/convert"
	"jsonbind.dev/errs"
)

// Kind enumerates the token kinds handed to the parser.
type Kind int

const (
	EOF Kind = iota
	Name
	Value
	Item
	LeftBrace
	RightBrace
	LeftSquare
	RightSquare
	Colon
	Comma
)

var kindNames = []string{
	"EOF", "NAME", "VALUE", "ITEM", "LEFT_BRACE", "RIGHT_BRACE",
	"LEFT_SQUARE", "RIGHT_SQUARE", "COLON", "COMMA",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Token is one lexical unit. Text carries the decoded payload of NAME, VALUE
// and ITEM tokens; Bare distinguishes unquoted literals from quoted strings.
// Offset is the rune offset of the token's first character.
type Token struct {
	Kind   Kind
	Text   string
	Bare   bool
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case Name, Value, Item:
		return t.Kind.String() + " " + t.Text
	}
	return t.Kind.String()
}

// Payload is the scalar handed to the value sinks: nil for a bare null, a
// convert.Literal for other bare literals and a plain string for quoted
// text.
func (t Token) Payload() any {
	if !t.Bare {
		return t.Text
	}
	if t.Text == "null" {
		return nil
	}
	return convert.Literal(t.Text)
}

type frame struct {
	container byte // '{' or '['
	nameNext  bool
}

// T is the lexer state over one reader.
type T struct {
	r        io.RuneScanner
	frames   []frame
	pushback *Token
	offset   int
}

// New wraps a reader; a bufio layer is added unless the reader already scans
// runes.
func New(r io.Reader) *T {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &T{r: rs}
}

// Unread pushes one token back; the next Read returns it. At most one token
// can be pending.
func (lx *T) Unread(tok Token) {
	lx.pushback = &tok
}

// Read returns the next token. I/O failures other than a clean end of input
// come back untouched; end of input is the EOF token.
func (lx *T) Read() (tok Token, err error) {
	if lx.pushback != nil {
		tok, lx.pushback = *lx.pushback, nil
		return
	}
	var c rune
	for {
		if c, err = lx.readRune(); err != nil {
			if err == io.EOF {
				return Token{Kind: EOF, Offset: lx.offset}, nil
			}
			return
		}
		if !isWhitespace(c) {
			break
		}
	}
	start := lx.offset - 1
	switch c {
	case '{':
		lx.frames = append(lx.frames, frame{container: '{', nameNext: true})
		return Token{Kind: LeftBrace, Offset: start}, nil
	case '[':
		lx.frames = append(lx.frames, frame{container: '['})
		return Token{Kind: LeftSquare, Offset: start}, nil
	case '}':
		if err = lx.pop('{', start); err != nil {
			return
		}
		return Token{Kind: RightBrace, Offset: start}, nil
	case ']':
		if err = lx.pop('[', start); err != nil {
			return
		}
		return Token{Kind: RightSquare, Offset: start}, nil
	case ':':
		if f := lx.top(); f != nil && f.container == '{' {
			f.nameNext = false
		}
		return Token{Kind: Colon, Offset: start}, nil
	case ',':
		if f := lx.top(); f != nil && f.container == '{' {
			f.nameNext = true
		}
		return Token{Kind: Comma, Offset: start}, nil
	case '"':
		var text string
		if text, err = lx.readString(start); err != nil {
			return
		}
		return Token{Kind: lx.classify(), Text: text, Offset: start}, nil
	}
	var text string
	if text, err = lx.readLiteral(c); err != nil {
		return
	}
	return Token{Kind: lx.classify(), Text: text, Bare: true, Offset: start}, nil
}

// classify decides NAME, VALUE or ITEM from the innermost open container.
func (lx *T) classify() Kind {
	f := lx.top()
	switch {
	case f == nil:
		return Value
	case f.container == '[':
		return Item
	case f.nameNext:
		return Name
	}
	return Value
}

func (lx *T) top() *frame {
	if len(lx.frames) == 0 {
		return nil
	}
	return &lx.frames[len(lx.frames)-1]
}

func (lx *T) pop(container byte, at int) error {
	f := lx.top()
	if f == nil || f.container != container {
		return errs.SyntaxAt(at, "unbalanced %q", closerOf(container))
	}
	lx.frames = lx.frames[:len(lx.frames)-1]
	return nil
}

func closerOf(container byte) string {
	if container == '{' {
		return "}"
	}
	return "]"
}

// readString consumes a quoted string after its opening quote, decoding the
// escape sequences of RFC 4627 including \uXXXX with surrogate pairs.
func (lx *T) readString(start int) (s string, err error) {
	var b strings.Builder
	for {
		var c rune
		if c, err = lx.readRune(); err != nil {
			if err == io.EOF {
				err = errs.SyntaxAt(start, "unterminated string")
			}
			return
		}
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if c, err = lx.readEscape(); err != nil {
				return
			}
		}
		b.WriteRune(c)
	}
}

func (lx *T) readEscape() (c rune, err error) {
	at := lx.offset
	if c, err = lx.readRune(); err != nil {
		if err == io.EOF {
			err = errs.SyntaxAt(at, "unterminated string escape")
		}
		return
	}
	switch c {
	case '"', '\\', '/':
		return c, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return lx.readUnicodeEscape(at)
	}
	err = errs.SyntaxAt(at, "illegal escape character %q", string(c))
	return
}

func (lx *T) readUnicodeEscape(at int) (c rune, err error) {
	var u1 rune
	if u1, err = lx.readHex4(at); err != nil {
		return
	}
	if !utf16.IsSurrogate(u1) {
		return u1, nil
	}
	// a high surrogate must be completed by a \uXXXX low surrogate
	var c2 rune
	if c2, err = lx.readRune(); err == nil && c2 == '\\' {
		if c2, err = lx.readRune(); err == nil && c2 == 'u' {
			var u2 rune
			if u2, err = lx.readHex4(at); err != nil {
				return
			}
			if c = utf16.DecodeRune(u1, u2); c != utf8.RuneError {
				return c, nil
			}
		}
	}
	if err != nil && err != io.EOF {
		return
	}
	err = errs.SyntaxAt(at, "invalid surrogate pair in string escape")
	return
}

func (lx *T) readHex4(at int) (c rune, err error) {
	for i := 0; i < 4; i++ {
		var h rune
		if h, err = lx.readRune(); err != nil {
			if err == io.EOF {
				err = errs.SyntaxAt(at, "unterminated unicode escape")
			}
			return
		}
		var d rune
		switch {
		case h >= '0' && h <= '9':
			d = h - '0'
		case h >= 'a' && h <= 'f':
			d = h - 'a' + 10
		case h >= 'A' && h <= 'F':
			d = h - 'A' + 10
		default:
			err = errs.SyntaxAt(at, "invalid unicode escape digit %q", string(h))
			return
		}
		c = c<<4 | d
	}
	return
}

// readLiteral consumes a bare literal starting with first, up to the next
// delimiter, which stays in the stream.
func (lx *T) readLiteral(first rune) (s string, err error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		var c rune
		if c, err = lx.readRune(); err != nil {
			if err == io.EOF {
				return b.String(), nil
			}
			return
		}
		if isWhitespace(c) || isDelimiter(c) {
			if err = lx.unreadRune(); err != nil {
				return
			}
			return b.String(), nil
		}
		b.WriteRune(c)
	}
}

func (lx *T) readRune() (c rune, err error) {
	if c, _, err = lx.r.ReadRune(); err == nil {
		lx.offset++
	}
	return
}

func (lx *T) unreadRune() (err error) {
	if err = lx.r.UnreadRune(); err == nil {
		lx.offset--
	}
	return
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c rune) bool {
	switch c {
	case '{', '}', '[', ']', ':', ',', '"':
		return true
	}
	return false
}
