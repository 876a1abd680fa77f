package disposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	disposition "github.com/teacon/go-disposition"
)

func TestAccessors(t *testing.T) {
	t.Parallel()

	v, err := disposition.Parse(`attachment; foo=bar; baz="qux quux"`)
	require.NoError(t, err)

	assert.Equal(t, "attachment", v.Type())
	assert.Equal(t, map[string]string{
		"foo": "bar",
		"baz": "qux quux",
	}, v.Parameters())
	assert.Equal(t, []string{"foo", "baz"}, v.ParameterNames())

	foo, ok := v.Parameter("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", foo)

	_, ok = v.Parameter("nope")
	assert.False(t, ok)

	// the returned map is a copy, the Value stays put
	v.Parameters()["foo"] = "changed"
	foo, _ = v.Parameter("foo")
	assert.Equal(t, "bar", foo)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	parse := func(input string) *disposition.Value {
		v, err := disposition.Parse(input)
		require.NoError(t, err)
		return v
	}

	assert.True(t, disposition.Inline().Equal(parse("inline")))
	assert.True(t, disposition.Attachment().Equal(parse("attachment")))

	assert.True(t, parse("attachment; foo=bar; baz=foo").Equal(parse("attachment; baz=foo; foo=bar")))
	assert.False(t, parse("attachment; foo=bar").Equal(parse("attachment; foo=bar; baz=foo")))
	assert.False(t, parse("inline; foo=bar; baz=foo").Equal(parse("attachment; foo=bar; baz=foo")))
	assert.False(t, parse("attachment; bar=foo; baz=foo").Equal(parse("attachment; foo=bar; baz=foo")))

	// strict equality also cares about parameter order
	assert.True(t, parse("attachment; foo=bar; baz=foo").StrictEqual(parse("attachment; foo=bar; baz=foo")))
	assert.False(t, parse("attachment; foo=bar; baz=foo").StrictEqual(parse("attachment; baz=foo; foo=bar")))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inline", disposition.Inline().String())
	assert.Equal(t, "attachment", disposition.Attachment().String())
	assert.Equal(t, []byte("attachment"), disposition.Attachment().Bytes())

	v := build(t, disposition.Type(disposition.AttachmentType).Parameter("foo", "bar"))
	assert.Equal(t, `attachment; foo="bar"`, v.String())

	v = build(t, disposition.Type(disposition.AttachmentType).Parameter("foo", `""`))
	assert.Equal(t, `attachment; foo="\"\""`, v.String())

	v = build(t, disposition.Type(disposition.AttachmentType).Parameter("foo*", "bar"))
	assert.Equal(t, "attachment; foo*=UTF-8''bar", v.String())

	v = build(t, disposition.Type(disposition.AttachmentType).Parameter("foo*", "bar-ä"))
	assert.Equal(t, "attachment; foo*=UTF-8''bar-%c3%a4", v.String())

	assert.Equal(t, `inline; filename="foo"; filename*=UTF-8''foo`,
		disposition.InlineFile("foo").String())
	assert.Equal(t, `inline; filename="foo-ä"; filename*=UTF-8''foo-%c3%a4`,
		disposition.InlineFile("foo-ä").String())
	assert.Equal(t, `inline; filename="bar-ä"; filename*=UTF-8''bar-%c3%a4`,
		disposition.InlineFile("foo/bar-ä").String())
	assert.Equal(t, `attachment; filename="???"; filename*=UTF-8''%e2%82%ac%e2%82%ac%e2%82%ac`,
		disposition.AttachmentFile("€€€").String())
	assert.Equal(t, `attachment; filename="foo-?-ä"; filename*=UTF-8''foo-%e2%82%ac-%c3%a4`,
		disposition.AttachmentFile("foo-€-ä").String())
	assert.Equal(t, `attachment; filename="baz-?-ä"; filename*=UTF-8''baz-%e2%82%ac-%c3%a4`,
		disposition.AttachmentFile("foo/bar/baz-€-ä").String())
}

func TestSerializeParseRoundTrip(t *testing.T) {
	t.Parallel()

	// serialization normalizes, but reparsing the result is always stable
	for _, input := range []string{
		"inline",
		"ATTACHMENT",
		`attachment; filename="foo.html"`,
		`attachment; filename=foo.html`,
		`attachment; foo="\"\\"; filename="foo.html"`,
		`attachment; filename*=UTF-8''foo-%c3%a4-%e2%82%ac.html`,
		`attachment; filename*0="foo"; filename*1="bar.html"`,
		`attachment; filename*0*=UTF-8''foo-%c3%a4; filename*1=".html"`,
		"attachment;\r\n\tfoo=\"bar\r\n baz\"",
	} {
		v, err := disposition.Parse(input)
		require.NoError(t, err, "parse of %q", input)

		rt, err := disposition.Parse(v.String())
		require.NoError(t, err, "reparse of %q from %q", v.String(), input)

		assert.True(t, v.Equal(rt), "round-trip of %q changed %q into %q", input, v, rt)
		assert.Equal(t, v.String(), rt.String(), "second serialization of %q differs", input)
	}
}
