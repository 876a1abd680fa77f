package disposition

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decoder represents the character decoding function used to transform the
// bytes of an RFC 2231 extended value into native unicode.
//
// The decoder should only permit a valid transformation from the source
// charset into unicode. Any byte present in the input that is invalid for
// the source charset should be replaced with unicode.ReplacementChar.
//
// If the source charset is not supported, an error should be returned.
type Decoder func(charset string, b []byte) (string, error)

// CharsetDecoder is the Decoder used for transforming the bytes of extended
// parameter values into unicode. You may replace this with a custom decoder
// if you like, or to make use of a decoder that is able to handle a wide
// variety of charsets, you can import the encoding package:
//
//	import _ "github.com/teacon/go-disposition/encoding"
var CharsetDecoder Decoder = DefaultCharsetDecoder

// DecodeError is returned by Parse when the charset label of an extended
// value does not resolve to a known charset.
type DecodeError struct {
	Charset string
	Err     error
}

// Error returns the error message.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode extended value in charset %q: %v", e.Charset, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// extValuePat matches the RFC 2231 extended value sub-grammar,
// charset'language'percent-encoded-chars, capturing the charset label, the
// optional language tag, and the encoded character run.
var extValuePat = regexp.MustCompile(
	"^([0-9A-Za-z!#$%&+^_`{}~-]*)'([A-Za-z]{4,8}|[A-Za-z]{2,3}(?:-[A-Za-z]{3}){0,3})?'((?:[0-9A-Za-z!#$&+.^_`|~-]|%[0-9A-Fa-f]{2})+)$")

// decodeExtValue decodes the percent-encoded character run of an extended
// value in the named charset. An empty charset label falls back to
// iso-8859-1. Under that fallback specifically, ISO control bytes are not
// valid text: each one flushes the bytes accumulated so far through the
// charset decoder and contributes a replacement character instead. The
// chars argument has already matched extValuePat, so percent triplets are
// known to be well-formed.
func decodeExtValue(charset, chars string) (string, error) {
	latin1 := isLatin1Label(charset)
	if charset == "" {
		charset = "iso-8859-1"
	}

	var out strings.Builder
	buf := make([]byte, 0, len(chars))
	flush := func() error {
		decoded, err := CharsetDecoder(charset, buf)
		if err != nil {
			return &DecodeError{Charset: charset, Err: err}
		}
		out.WriteString(decoded)
		buf = buf[:0]
		return nil
	}

	for i := 0; i < len(chars); i++ {
		b := chars[i]
		if b == '%' {
			b = hexDigit(chars[i+1])<<4 | hexDigit(chars[i+2])
			i += 2
		}
		if latin1 && isISOControl(b) {
			if err := flush(); err != nil {
				return "", err
			}
			out.WriteRune(unicode.ReplacementChar)
			continue
		}
		buf = append(buf, b)
	}
	if err := flush(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// isLatin1Label reports whether a charset label names iso-8859-1, the
// single-byte fallback charset whose control bytes must be rejected. The
// empty label counts: it defaults to iso-8859-1.
func isLatin1Label(label string) bool {
	switch strings.ToLower(label) {
	case "", "iso-8859-1", "iso8859-1", "latin1", "l1", "cp819", "csisolatin1":
		return true
	}
	return false
}

func isISOControl(b byte) bool {
	return b < 0x20 || (b >= 0x7f && b <= 0x9f)
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// DefaultCharsetDecoder is the default decoder. It is able to handle
// us-ascii, iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will
// result in an error.
//
// When us-ascii is input, any 8-bit byte (i.e., bytes greater than 0x7f)
// will be translated into unicode.ReplacementChar.
//
// When utf-8 is input, the bytes will be read in and transformed into runes
// such that only valid unicode sequences are permitted. Errors will be
// brought in as unicode.ReplacementChar.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	switch strings.ToLower(charset) {
	case "us-ascii":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "iso8859-1", "latin1", "l1", "cp819", "csisolatin1":
		// latin-1 bytes map one-to-one onto the first 256 code points
		var s strings.Builder
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case "utf-8":
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}
