package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teacon/go-disposition/internal/scanner"
)

func scanAll(t *testing.T, input string) []scanner.Token {
	t.Helper()

	s := scanner.New(input)
	var toks []scanner.Token
	for {
		tok, ok := s.Next()
		require.True(t, ok, "scan failed at index %d of %q", s.Pos(), input)
		toks = append(toks, tok)
		if tok.Kind == scanner.End {
			return toks
		}
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, `attachment; filename="foo.html"`)
	require.Len(t, toks, 6)

	assert.Equal(t, scanner.Word, toks[0].Kind)
	assert.Equal(t, "attachment", toks[0].Text)
	assert.Equal(t, 0, toks[0].Offset)

	assert.Equal(t, scanner.Separator, toks[1].Kind)
	assert.Equal(t, ";", toks[1].Text)

	assert.Equal(t, scanner.Word, toks[2].Kind)
	assert.Equal(t, "filename", toks[2].Text)
	assert.Equal(t, 11, toks[2].Offset)

	assert.Equal(t, scanner.Separator, toks[3].Kind)
	assert.Equal(t, "=", toks[3].Text)

	assert.Equal(t, scanner.QuotedString, toks[4].Kind)
	assert.Equal(t, `"foo.html"`, toks[4].Text)

	assert.Equal(t, scanner.End, toks[5].Kind)
}

func TestNextEmpty(t *testing.T) {
	t.Parallel()

	s := scanner.New("")
	tok, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, scanner.End, tok.Kind)
}

func TestNextWordCharset(t *testing.T) {
	t.Parallel()

	// the full RFC 2616 token repertoire scans as a single word
	toks := scanAll(t, "UTF-8''foo-%c3%a4.html*!#$&|~")
	require.Len(t, toks, 2)
	assert.Equal(t, scanner.Word, toks[0].Kind)
	assert.Equal(t, "UTF-8''foo-%c3%a4.html*!#$&|~", toks[0].Text)
}

func TestNextFoldingWhitespace(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, "attachment;\r\n\tfoo =\r\n bar \t ")
	require.Len(t, toks, 6)
	assert.Equal(t, "attachment", toks[0].Text)
	assert.Equal(t, "foo", toks[2].Text)
	assert.Equal(t, "bar", toks[4].Text)
	assert.Equal(t, scanner.End, toks[5].Kind)

	// the whole folding run belongs to the token that follows it
	assert.Equal(t, 11, toks[2].Offset)
}

func TestNextQuotedString(t *testing.T) {
	t.Parallel()

	toks := scanAll(t, `"b\"a\\r"`)
	require.Len(t, toks, 2)
	assert.Equal(t, scanner.QuotedString, toks[0].Kind)
	assert.Equal(t, `"b\"a\\r"`, toks[0].Text)

	// folding whitespace and high bytes are legal inside quotes
	toks = scanAll(t, "\"bar\r\n\tbaz \xc3\xa4\"")
	require.Len(t, toks, 2)
	assert.Equal(t, scanner.QuotedString, toks[0].Kind)
}

func TestNextFailures(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		",",               // not a token character
		`"bar`,            // unterminated quoted-string
		"\"bar\r\nbaz\"",  // CRLF without trailing whitespace inside quotes
		"\"bar\x00baz\"",  // control character inside quotes
		"\"bar\\\xe4baz\"", // escape outside the printable range
		"\r\nfoo",          // CRLF alone is not folding whitespace
	} {
		s := scanner.New(input)
		_, ok := s.Next()
		assert.False(t, ok, "expected scan failure for %q", input)
		assert.Equal(t, 0, s.Pos(), "cursor must not move on failure for %q", input)
	}
}
