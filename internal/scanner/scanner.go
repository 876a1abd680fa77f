// Package scanner performs the lexical scan of a Content-Disposition header
// value. It splits the raw string into the four token classes the grammar
// knows about: end-of-input, the ";" and "=" separators, quoted-strings, and
// bare token words. Folding whitespace before a token is consumed as part of
// scanning that token.
package scanner

import "strings"

// Kind identifies the lexical class of a Token.
type Kind int

// The token classes produced by Next.
const (
	End          Kind = iota // end of input
	Separator                // a single ";" or "="
	QuotedString             // a quoted-string, surrounding quotes included
	Word                     // an RFC 2616 token word
)

// Token is a single lexical unit of a header value.
type Token struct {
	Kind   Kind
	Text   string // the matched text; quotes are included for QuotedString
	Offset int    // byte offset where the match began, folding whitespace included
}

// tokenExtra lists the punctuation permitted in token words besides digits
// and letters.
const tokenExtra = "!#$%&'*+-.^_`|~"

func isTokenByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	}
	return strings.IndexByte(tokenExtra, c) >= 0
}

// Scanner scans a header value one token at a time. It holds only the input
// and a cursor, which advances monotonically and never re-scans backward.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the byte offset at which the next scan will begin, which is
// also the offset to report when that scan fails.
func (s *Scanner) Pos() int {
	return s.pos
}

// Next scans the token starting at the current position. It reports ok as
// false when no token of any class matches there; the cursor is left
// unmoved in that case.
func (s *Scanner) Next() (Token, bool) {
	start := s.pos
	p := s.skipFoldingWS(s.pos)

	if p >= len(s.input) {
		s.pos = p
		return Token{Kind: End, Offset: start}, true
	}

	switch c := s.input[p]; {
	case c == ';' || c == '=':
		s.pos = p + 1
		return Token{Kind: Separator, Text: s.input[p : p+1], Offset: start}, true
	case c == '"':
		end, ok := s.scanQuoted(p)
		if !ok {
			return Token{}, false
		}
		s.pos = end
		return Token{Kind: QuotedString, Text: s.input[p:end], Offset: start}, true
	case isTokenByte(c):
		end := p + 1
		for end < len(s.input) && isTokenByte(s.input[end]) {
			end++
		}
		s.pos = end
		return Token{Kind: Word, Text: s.input[p:end], Offset: start}, true
	}

	return Token{}, false
}

// skipFoldingWS consumes at most one run of folding whitespace: an optional
// CRLF followed by one or more spaces or tabs. A CRLF with no space after it
// is not folding whitespace and is left for the token match to reject.
func (s *Scanner) skipFoldingWS(p int) int {
	ws := p
	if strings.HasPrefix(s.input[ws:], "\r\n") {
		ws += 2
	}
	end := ws
	for end < len(s.input) && (s.input[end] == ' ' || s.input[end] == '\t') {
		end++
	}
	if end == ws {
		return p
	}
	return end
}

// scanQuoted matches a quoted-string beginning at the opening quote. The
// interior admits visible Latin-1 characters other than the quote and
// backslash, backslash escapes of printable ASCII, and folding whitespace.
// It returns the offset just past the closing quote.
func (s *Scanner) scanQuoted(start int) (int, bool) {
	i := start + 1
	for i < len(s.input) {
		switch c := s.input[i]; {
		case c == '"':
			return i + 1, true
		case c == '\\':
			if i+1 >= len(s.input) {
				return 0, false
			}
			if esc := s.input[i+1]; esc < 0x20 || esc > 0x7e {
				return 0, false
			}
			i += 2
		case c == '\r':
			// only CRLF followed by at least one space or tab may appear
			if !strings.HasPrefix(s.input[i:], "\r\n") {
				return 0, false
			}
			j := i + 2
			for j < len(s.input) && (s.input[j] == ' ' || s.input[j] == '\t') {
				j++
			}
			if j == i+2 {
				return 0, false
			}
			i = j
		case c == ' ' || c == '\t':
			i++
		case c > 0x20 && c != 0x7f:
			i++
		default:
			return 0, false
		}
	}
	return 0, false
}
