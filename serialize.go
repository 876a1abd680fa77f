package disposition

import "strings"

const lowerhex = "0123456789abcdef"

// String returns the wire-format representation of the Value, suitable for
// use as a Content-Disposition header value. Parameters are written in
// insertion order. A parameter whose name ends in "*" is written as a UTF-8
// extended value; every other parameter is written as a quoted-string.
func (v *Value) String() string {
	var b strings.Builder
	b.WriteString(v.typ)
	for p := v.parms.Oldest(); p != nil; p = p.Next() {
		b.WriteString("; ")
		b.WriteString(p.Key)
		b.WriteByte('=')
		if strings.HasSuffix(p.Key, "*") {
			writeExtValue(&b, p.Value)
		} else {
			writeQuoted(&b, p.Value)
		}
	}
	return b.String()
}

// Bytes returns the wire-format representation of the Value as a slice of
// bytes.
func (v *Value) Bytes() []byte {
	return []byte(v.String())
}

// writeExtValue writes value as an RFC 2231 extended value. Each byte of the
// UTF-8 encoding lands either as itself, when it is visible ASCII, or as a
// percent triplet with lowercase hex digits.
func writeExtValue(b *strings.Builder, value string) {
	b.WriteString("UTF-8''")
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= 0x20 && c <= 0x7e {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(lowerhex[c>>4])
			b.WriteByte(lowerhex[c&0xf])
		}
	}
}

// writeQuoted writes value as a quoted-string, escaping the quote and
// backslash characters.
func writeQuoted(b *strings.Builder, value string) {
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}
