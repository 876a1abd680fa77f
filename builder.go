package disposition

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrNotAToken is returned by Build when the type or a parameter key
	// does not match the token grammar.
	ErrNotAToken = errors.New("not a token")

	// ErrCannotEncode is returned by Build when a plain parameter value
	// contains characters outside the header text grammar.
	ErrCannotEncode = errors.New("cannot encode parameter")

	// ErrParameterExists is returned by Build when the same parameter key is
	// added twice.
	ErrParameterExists = errors.New("parameter key exists")
)

// Precompiled grammar patterns shared by builder validation. tokenPat is the
// RFC 2616 token charset; textPat is the Latin-1 header text charset a
// quoted-string can carry.
var (
	tokenPat = regexp.MustCompile("^[0-9A-Za-z!#$%&'*+.^_`|~-]+$")
	textPat  = regexp.MustCompile("^[\\x20-\\x7E\\x80-\\xFF]+$")
)

// Builder accumulates a disposition type and parameters and then builds an
// immutable Value. Unlike Parse, the Builder treats a duplicate parameter
// key as a hard error. Builder methods chain; the first validation failure
// sticks and is reported by Build. A Builder is for one goroutine and one
// Build call; it must not be reused afterward.
type Builder struct {
	typ   string
	parms *orderedmap.OrderedMap[string, string]
	err   error
}

// Type starts a Builder for a Value of the given disposition type. The type
// must match the token grammar.
func Type(typ string) *Builder {
	b := &Builder{parms: orderedmap.New[string, string]()}
	if !tokenPat.MatchString(typ) {
		b.err = fmt.Errorf("%w: %q", ErrNotAToken, typ)
		return b
	}
	b.typ = strings.ToLower(typ)
	return b
}

// Parameter adds a parameter to the Builder. The key must match the token
// grammar and must not have been added before. Unless the key ends in "*",
// the value must be representable in the header text grammar; extended
// parameters take any unicode value, since they serialize percent-encoded.
func (b *Builder) Parameter(key, value string) *Builder {
	if b.err != nil {
		return b
	}
	if !tokenPat.MatchString(key) {
		b.err = fmt.Errorf("%w: %q", ErrNotAToken, key)
		return b
	}
	if !strings.HasSuffix(key, "*") && !textPat.MatchString(value) {
		b.err = fmt.Errorf("%w: %s=%q", ErrCannotEncode, key, value)
		return b
	}
	key = strings.ToLower(key)
	if _, ok := b.parms.Get(key); ok {
		b.err = fmt.Errorf("%w: %s", ErrParameterExists, key)
		return b
	}
	b.parms.Set(key, value)
	return b
}

// Filename specifies the filename of the Value being built. It sets both
// the "filename" parameter, with characters outside the header text grammar
// replaced by "?", and the "filename*" extended parameter carrying the
// original. It fails if either key has already been added.
func (b *Builder) Filename(filename string) *Builder {
	if b.err != nil {
		return b
	}
	for _, key := range []string{Filename, Filename + "*"} {
		if _, ok := b.parms.Get(key); ok {
			b.err = fmt.Errorf("%w: %s", ErrParameterExists, key)
			return b
		}
	}
	b.parms.Set(Filename, replaceNonText(filename))
	b.parms.Set(Filename+"*", filename)
	return b
}

// Build returns the built Value, or the first error any of the builder
// methods ran into.
func (b *Builder) Build() (*Value, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Value{typ: b.typ, parms: b.parms}, nil
}

// replaceNonText substitutes "?" for every rune outside the header text
// grammar, producing the degraded plain filename that rides alongside the
// extended one.
func replaceNonText(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r <= 0x7e || r >= 0x80 && r <= 0xff {
			return r
		}
		return '?'
	}, s)
}

// Inline returns an inline Value with no parameters.
func Inline() *Value {
	v, _ := Type(InlineType).Build()
	return v
}

// InlineFile returns an inline Value whose filename is given by path. Only
// the last segment of the path is used.
func InlineFile(path string) *Value {
	v, _ := Type(InlineType).Filename(filepath.Base(path)).Build()
	return v
}

// Attachment returns an attachment Value with no parameters.
func Attachment() *Value {
	v, _ := Type(AttachmentType).Build()
	return v
}

// AttachmentFile returns an attachment Value whose filename is given by
// path. Only the last segment of the path is used.
func AttachmentFile(path string) *Value {
	v, _ := Type(AttachmentType).Filename(filepath.Base(path)).Build()
	return v
}
