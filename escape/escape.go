// Package escape implements JSON string escaping according to RFC 4627.
//
// A string begins and ends with quotation marks. All Unicode characters may
// be placed within the quotation marks except for the characters that must
// be escaped: quotation mark, reverse solidus, and the control characters
// U+0000 through U+001F. Forward solidus is legal to escape but is emitted
// verbatim here.
package escape

const hexDigits = "0123456789abcdef"

// Append escapes src and appends it to dst. Control characters with a short
// escape form use it, the rest of 0x00-0x1F get the \u00XX numeric form.
func Append(dst, src []byte) []byte {
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0',
					hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// AppendQuoted appends the double-quoted, escaped form of src to dst.
func AppendQuoted(dst, src []byte) []byte {
	dst = append(dst, '"')
	dst = Append(dst, src)
	dst = append(dst, '"')
	return dst
}

// AppendQuotedString is AppendQuoted for a string source.
func AppendQuotedString(dst []byte, src string) []byte {
	return AppendQuoted(dst, []byte(src))
}
