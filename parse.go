package disposition

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teacon/go-disposition/internal/scanner"
)

// LexError is returned by Parse when no token of any kind matches the input
// at some position.
type LexError struct {
	Offset int // byte offset just past the last recognized token
}

// Error returns the error message.
func (e *LexError) Error() string {
	return fmt.Sprintf("unrecognized token after index %d", e.Offset)
}

// SyntaxError is returned by Parse when a well-formed token appears where
// the grammar expects a different construct.
type SyntaxError struct {
	Offset   int    // byte offset where the offending token begins
	Expected string // the construct the parser was looking for
}

// Error returns the error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s expected at index %d", e.Expected, e.Offset)
}

// The parser runs as a small state machine over the token stream. Each state
// names the construct it requires next.
type state int

const (
	expectType state = iota
	expectSemicolonOrEnd
	expectParamKey
	expectEquals
	expectParamValue
	done
)

// Parse parses a Content-Disposition header value. Parsing is strict: the
// first grammar violation aborts with a *LexError, *SyntaxError, or
// *DecodeError and no partial result. Duplicate parameter keys are not an
// error; the first occurrence wins and later ones are dropped.
func Parse(input string) (*Value, error) {
	p := parser{
		scan:  scanner.New(input),
		parms: orderedmap.New[string, string](),
	}
	for st := expectType; st != done; {
		next, err := p.read(st)
		if err != nil {
			return nil, err
		}
		st = next
	}
	return &Value{typ: p.typ, parms: p.parms}, nil
}

type parser struct {
	scan    *scanner.Scanner
	typ     string
	parmKey string
	parms   *orderedmap.OrderedMap[string, string]
}

// read consumes one token and advances the state machine.
func (p *parser) read(st state) (state, error) {
	prevEnd := p.scan.Pos()
	tok, ok := p.scan.Next()
	if !ok {
		return 0, &LexError{Offset: prevEnd}
	}

	switch st {
	case expectType:
		if tok.Kind != scanner.Word {
			return 0, &SyntaxError{Offset: tok.Offset, Expected: "disposition type"}
		}
		p.typ = strings.ToLower(tok.Text)
		return expectSemicolonOrEnd, nil

	case expectSemicolonOrEnd:
		if tok.Kind == scanner.End {
			return done, nil
		}
		if tok.Kind != scanner.Separator || tok.Text != ";" {
			return 0, &SyntaxError{Offset: tok.Offset, Expected: "semicolon"}
		}
		return expectParamKey, nil

	case expectParamKey:
		if tok.Kind != scanner.Word {
			return 0, &SyntaxError{Offset: tok.Offset, Expected: "parameter"}
		}
		p.parmKey = strings.ToLower(tok.Text)
		return expectEquals, nil

	case expectEquals:
		if tok.Kind != scanner.Separator || tok.Text != "=" {
			return 0, &SyntaxError{Offset: tok.Offset, Expected: "equals symbol"}
		}
		return expectParamValue, nil

	case expectParamValue:
		return p.readValue(tok)
	}

	panic("unreachable")
}

// readValue handles the expectParamValue state. Keys ending in "*" take an
// RFC 2231 extended value, which is always a bare word; a quoted-string
// there is an error. All other keys take a word as-is or a quoted-string.
func (p *parser) readValue(tok scanner.Token) (state, error) {
	extended := strings.HasSuffix(p.parmKey, "*")

	if tok.Kind == scanner.Word {
		if !extended {
			p.insert(p.parmKey, tok.Text)
			return expectSemicolonOrEnd, nil
		}
		if m := extValuePat.FindStringSubmatch(tok.Text); m != nil {
			decoded, err := decodeExtValue(m[1], m[3])
			if err != nil {
				return 0, err
			}
			p.insert(p.parmKey, decoded)
			return expectSemicolonOrEnd, nil
		}
	}

	if tok.Kind == scanner.QuotedString && !extended {
		p.insert(p.parmKey, unquote(tok.Text))
		return expectSemicolonOrEnd, nil
	}

	return 0, &SyntaxError{Offset: tok.Offset, Expected: "parameter value"}
}

// insert stores a parameter unless the key has been seen before. The first
// occurrence wins; later duplicates are silently dropped.
func (p *parser) insert(key, value string) {
	if _, ok := p.parms.Get(key); !ok {
		p.parms.Set(key, value)
	}
}
