// Package names converts between wire property names and Go member names.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToMemberName converts dash separated words to a camel case member name.
// The first character of the returned name is lower case, e.g.
// "this-is-a-string" is converted to "thisIsAString". A name with no dashes
// is returned unchanged.
func ToMemberName(words string) string {
	if !strings.ContainsRune(words, '-') {
		return words
	}
	parts := strings.FieldsFunc(words, func(r rune) bool { return r == '-' })
	if len(parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		r, size := utf8.DecodeRuneInString(p)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(p[size:])
	}
	return sb.String()
}

// ToFieldName capitalizes the first rune of a member name so it can be
// looked up as an exported Go struct field, e.g. "userName" to "UserName".
func ToFieldName(member string) string {
	if member == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(member)
	if unicode.IsUpper(r) {
		return member
	}
	return string(unicode.ToUpper(r)) + member[size:]
}

// ToPropertyName lowers the first rune of an exported Go field name to get
// the wire property name, e.g. "UserName" to "userName".
func ToPropertyName(field string) string {
	if field == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(field)
	if unicode.IsLower(r) {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}

// Last returns the substring after the last occurrence of separator, or the
// whole string when the separator is absent.
func Last(s string, separator rune) string {
	if i := strings.LastIndexByte(s, byte(separator)); i >= 0 {
		return s[i+1:]
	}
	return s
}
