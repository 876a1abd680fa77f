package disposition

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// InlineType is the disposition type of content meant to be displayed
	// as part of the page.
	InlineType = "inline"

	// AttachmentType is the disposition type of content meant to be
	// downloaded and saved locally.
	AttachmentType = "attachment"

	// Filename is the name of the filename parameter.
	Filename = "filename"

	// CreationDate is the name of the creation-date parameter (RFC 2183).
	CreationDate = "creation-date"

	// ModificationDate is the name of the modification-date parameter
	// (RFC 2183).
	ModificationDate = "modification-date"

	// ReadDate is the name of the read-date parameter (RFC 2183).
	ReadDate = "read-date"
)

// Value represents a Content-Disposition header value: a disposition type
// and an ordered set of parameters. A Value is immutable. It is safe to
// share across goroutines without synchronization.
//
// The type and all parameter names are lowercased. Parameter values hold
// decoded text: quoted-string escapes and extended-value percent encoding
// have already been resolved, so a value may contain arbitrary unicode,
// including the replacement character where the sender's bytes were invalid.
type Value struct {
	typ   string
	parms *orderedmap.OrderedMap[string, string]
}

// Type returns the disposition type, e.g. "inline" or "attachment".
func (v *Value) Type() string {
	return v.typ
}

// IsInline reports whether the disposition type is "inline".
func (v *Value) IsInline() bool {
	return v.typ == InlineType
}

// IsAttachment reports whether the disposition type is "attachment".
func (v *Value) IsAttachment() bool {
	return v.typ == AttachmentType
}

// Parameter returns the decoded value of the named parameter and whether the
// parameter is present. Names are lowercase.
func (v *Value) Parameter(name string) (string, bool) {
	return v.parms.Get(name)
}

// Parameters returns the parameters as a plain map. The map is a copy; the
// Value itself cannot be modified through it. Insertion order is not
// represented here, use ParameterNames for that.
func (v *Value) Parameters() map[string]string {
	ps := make(map[string]string, v.parms.Len())
	for p := v.parms.Oldest(); p != nil; p = p.Next() {
		ps[p.Key] = p.Value
	}
	return ps
}

// ParameterNames returns the parameter names in insertion order.
func (v *Value) ParameterNames() []string {
	names := make([]string, 0, v.parms.Len())
	for p := v.parms.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Equal reports whether two values have the same type and the same
// parameters. Parameter order does not matter here:
//
//	a, _ := disposition.Parse("inline; a=foo; b=bar")
//	b, _ := disposition.Parse("inline; b=bar; a=foo")
//
//	a.Equal(b)       // true, order can be arbitrary
//	a.StrictEqual(b) // false, order must be consistent in strict mode
func (v *Value) Equal(o *Value) bool {
	return v.equal(o, false)
}

// StrictEqual is like Equal but additionally requires the parameters to
// appear in the same order.
func (v *Value) StrictEqual(o *Value) bool {
	return v.equal(o, true)
}

func (v *Value) equal(o *Value, strict bool) bool {
	if v.typ != o.typ {
		return false
	}
	if v.parms == o.parms {
		return true
	}
	if v.parms.Len() != o.parms.Len() {
		return false
	}
	other := o.parms.Oldest()
	for p := v.parms.Oldest(); p != nil; p = p.Next() {
		if strict {
			if p.Key != other.Key || p.Value != other.Value {
				return false
			}
			other = other.Next()
		} else {
			ov, ok := o.parms.Get(p.Key)
			if !ok || ov != p.Value {
				return false
			}
		}
	}
	return true
}
