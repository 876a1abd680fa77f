// Package encoding provides a replacement decoder for use with
// disposition.CharsetDecoder. This loads all the encodings provided with:
//
// * golang.org/x/text/encoding/ianaindex
//
// This will make the size of your compiled binaries considerably larger. But
// it will also give your code the ability to decode pretty much any charset
// an extended parameter value might be labeled with in the wild wild world
// of HTTP.
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	disposition "github.com/teacon/go-disposition"
)

func init() {
	disposition.CharsetDecoder = CharsetDecoder
}

// CharsetDecoder provides a replacement decoder for
// disposition.CharsetDecoder, which can decode a wide range of rare and
// unusual charsets.
func CharsetDecoder(charset string, b []byte) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
