package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Unescape decodes character references in the payload back into the
// characters they stand for and returns the result as a plain,
// untagged string.
//
// The full set of standard named references is recognized, as are
// decimal and hexadecimal numeric references. References to invalid
// code points decode to U+FFFD. Anything that does not parse as a
// reference is left as is. This is the one-way transition out of the
// safe-markup domain; escaping is the only way back in.
func (m Markup) Unescape() string {
	if !strings.Contains(m.str, "&") {
		return m.str
	}
	return html.UnescapeString(m.str)
}

// StripTags removes comments and angle-bracketed tags from the
// payload, normalizes runs of white space to single spaces, and
// unescapes the remainder.
//
// This is a convenience for pulling the text out of trusted markup. It
// is a best-effort textual pass, not a sanitizer; do not use it to
// make untrusted HTML safe.
func (m Markup) StripTags() string {
	var s = stripComments(m.str)
	s = stripAngleRuns(s)
	s = strings.Join(strings.Fields(s), " ")
	return Markup{str: s}.Unescape()
}

// stripComments removes well-formed "<!-- -->" comments. An
// unterminated comment is left for stripAngleRuns, which consumes it
// up to the first '>'.
func stripComments(s string) string {
	for {
		i := strings.Index(s, "<!--")
		if i < 0 {
			return s
		}
		j := strings.Index(s[i+4:], "-->")
		if j < 0 {
			return s
		}
		s = s[:i] + s[i+4+j+3:]
	}
}

// stripAngleRuns replaces every "<...>" run with a single space, so
// that text separated only by tags does not run together; the caller
// collapses the extra spacing. A '<' with no closing '>' is kept.
func stripAngleRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.IndexByte(s, '<')
		if i < 0 {
			b.WriteString(s)
			break
		}
		j := strings.IndexByte(s[i:], '>')
		if j < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		b.WriteByte(' ')
		s = s[i+j+1:]
	}
	return b.String()
}
