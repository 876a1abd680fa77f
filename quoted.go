package disposition

import "strings"

// unquote resolves a raw quoted-string token, surrounding quotes included,
// into its logical value. A CRLF followed by spaces or tabs collapses to a
// single space, a backslash escapes the character after it, and everything
// else copies through unchanged. The scanner has already vetted the token,
// so no error can occur here.
func unquote(raw string) string {
	inner := raw[1 : len(raw)-1]

	var out strings.Builder
	out.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		switch c := inner[i]; c {
		case '\r':
			if i+1 < len(inner) && inner[i+1] == '\n' {
				j := i + 2
				for j < len(inner) && (inner[j] == ' ' || inner[j] == '\t') {
					j++
				}
				out.WriteByte(' ')
				i = j - 1
			}
		case '\\':
			i++
			out.WriteByte(inner[i])
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
