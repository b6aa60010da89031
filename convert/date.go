package convert

import (
	"reflect"
	"time"

	"jsonbind.dev/errs"
	"jsonbind.dev/ints"
	"jsonbind.dev/types"
)

// Dates travel as second precision local-less timestamps in the fixed form
// yyyy-MM-ddTHH:mm:ss, interpreted as UTC on both sides. Anything after the
// seconds field is ignored on decode, so inputs carrying fractional seconds
// or a zone designator still parse; the designator itself has no effect.

// parseDate decodes a wire timestamp into a date-like target type. The empty
// string decodes to the zero time.
func parseDate(text string, t reflect.Type) (v reflect.Value, err error) {
	if text == "" {
		return reflect.Zero(t), nil
	}
	var tm time.Time
	if tm, err = ParseDate(text); err != nil {
		return
	}
	return reflect.ValueOf(tm).Convert(t), nil
}

// ParseDate decodes the yyyy-MM-ddTHH:mm:ss wire form as a UTC instant.
func ParseDate(s string) (t time.Time, err error) {
	fail := func(pos int) (time.Time, error) {
		return t, errs.SyntaxAt(pos, "cannot parse timestamp %q, expect yyyy-MM-ddTHH:mm:ss", s)
	}
	if len(s) < 19 {
		return fail(len(s))
	}
	if s[4] != '-' || s[7] != '-' || s[10] != 'T' || s[13] != ':' || s[16] != ':' {
		return fail(0)
	}
	var year, month, day, hour, min, sec int
	if year, err = field(s, 0, 4); err != nil {
		return fail(0)
	}
	if month, err = field(s, 5, 2); err != nil {
		return fail(5)
	}
	if day, err = field(s, 8, 2); err != nil {
		return fail(8)
	}
	if hour, err = field(s, 11, 2); err != nil {
		return fail(11)
	}
	if min, err = field(s, 14, 2); err != nil {
		return fail(14)
	}
	if sec, err = field(s, 17, 2); err != nil {
		return fail(17)
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), nil
}

func field(s string, pos, width int) (n int, err error) {
	for i := pos; i < pos+width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errs.Syntax("not a digit")
		}
		n = n*10 + int(c-'0')
	}
	return
}

// AppendDate renders a date-like value in the wire form, always in UTC with
// a trailing Z. Years are zero padded to four digits; a negative
// (astronomical) year keeps its sign ahead of the padding.
func AppendDate(dst []byte, tm time.Time) []byte {
	tm = tm.UTC()
	year := tm.Year()
	if year < 0 {
		dst = append(dst, '-')
		year = -year
	}
	dst = pad(dst, year, 4)
	dst = append(dst, '-')
	dst = pad(dst, int(tm.Month()), 2)
	dst = append(dst, '-')
	dst = pad(dst, tm.Day(), 2)
	dst = append(dst, 'T')
	dst = pad(dst, tm.Hour(), 2)
	dst = append(dst, ':')
	dst = pad(dst, tm.Minute(), 2)
	dst = append(dst, ':')
	dst = pad(dst, tm.Second(), 2)
	return append(dst, 'Z')
}

func pad(dst []byte, n, width int) []byte {
	digits := ints.AppendUint(nil, uint64(n))
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}

// DateValue converts any date-like value to a plain time.Time.
func DateValue(v reflect.Value) time.Time {
	return v.Convert(types.TimeType()).Interface().(time.Time)
}
