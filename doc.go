// Package disposition parses and serializes the value of an HTTP
// Content-Disposition header as described by RFC 6266, including the RFC 2231
// extended-parameter and continuation-parameter grammar used to smuggle
// internationalized filenames through the ASCII header syntax.
//
// The central type is Value, an immutable disposition type plus an ordered
// parameter map. A Value comes from one of two places. Parse() runs the full
// grammar over an untrusted wire string, decoding quoted-strings and RFC 2231
// extended values along the way. The Builder, created via Type() or one of
// the Inline/Attachment convenience constructors, assembles a Value directly
// and validates more strictly than the parser does: where Parse() silently
// keeps the first of two duplicate parameters, the Builder refuses the
// second outright.
//
// Going the other way, Value.String() renders the exact wire grammar,
// writing parameters whose names end in "*" as UTF-8 extended values and
// everything else as quoted-strings. The serialized form of a parsed value
// is a normalization rather than a byte-for-byte round-trip, but parsing it
// again always yields an equal Value.
//
// Value.Filename() implements the priority and continuation-assembly rules
// for the filename, filename*, and filename*N[*] parameter family, so a
// caller gets a single best-effort filename without caring which of the
// several encodings the sender chose.
//
// Extended values carry a charset label. By default only us-ascii,
// iso-8859-1, and utf-8 resolve; parsing a value labeled with anything else
// fails. To decode the long tail of charsets registered with IANA, import
// the encoding subpackage for its side effects:
//
//	import _ "github.com/teacon/go-disposition/encoding"
//
// This will make the size of your compiled binaries considerably larger, but
// it will also let your code decode pretty much any charset it might
// encounter in the wild.
package disposition
