package disposition

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrNoSuchParameter is returned by the date accessors when the parameter is
// not present.
var ErrNoSuchParameter = errors.New("no such parameter")

// Filename returns the logical filename carried by the parameters, or false
// when none is present.
//
// Senders may split the filename across continuation parameters filename*0,
// filename*1, and so on, each optionally in the extended filename*N* form.
// Per index the extended form wins over the plain one. When index 0 exists,
// consecutive indices are concatenated up to the first missing one; parts
// beyond a gap are ignored. Without continuations, a simple filename* is
// preferred over filename.
func (v *Value) Filename() (string, bool) {
	if part, ok := v.preferExt(Filename + "*0"); ok {
		var name strings.Builder
		for index := 1; ; index++ {
			name.WriteString(part)
			part, ok = v.preferExt(Filename + "*" + strconv.Itoa(index))
			if !ok {
				return name.String(), true
			}
		}
	}
	return v.preferExt(Filename)
}

// preferExt looks a parameter up under two names, preferring the extended
// "key*" variant over the plain key.
func (v *Value) preferExt(key string) (string, bool) {
	if val, ok := v.parms.Get(key + "*"); ok {
		return val, true
	}
	return v.parms.Get(key)
}

// CreationDate parses the creation-date parameter (RFC 2183) as a time. It
// returns ErrNoSuchParameter when the parameter is absent and a parse error
// when its value is not a recognizable date.
func (v *Value) CreationDate() (time.Time, error) {
	return v.dateParameter(CreationDate)
}

// ModificationDate parses the modification-date parameter (RFC 2183) as a
// time.
func (v *Value) ModificationDate() (time.Time, error) {
	return v.dateParameter(ModificationDate)
}

// ReadDate parses the read-date parameter (RFC 2183) as a time.
func (v *Value) ReadDate() (time.Time, error) {
	return v.dateParameter(ReadDate)
}

func (v *Value) dateParameter(name string) (time.Time, error) {
	body, ok := v.parms.Get(name)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNoSuchParameter, name)
	}
	return parseTime(body)
}

// parseTime attempts to parse the date using the format specified by RFC
// 5322 first and falls back to parsing it in many other formats.
func parseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}
