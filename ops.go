package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Concat escapes each value and concatenates the results.
func Concat(vals ...any) Markup {
	var parts = make([]Markup, len(vals))
	var n = 0
	for i, v := range vals {
		parts[i] = Escape(v)
		n += len(parts[i].str)
	}
	var b strings.Builder
	b.Grow(n)
	for _, p := range parts {
		b.WriteString(p.str)
	}
	return Markup{str: b.String()}
}

// Concat returns m followed by each value, escaped.
func (m Markup) Concat(vals ...any) Markup {
	var parts = make([]Markup, len(vals))
	var n = len(m.str)
	for i, v := range vals {
		parts[i] = Escape(v)
		n += len(parts[i].str)
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(m.str)
	for _, p := range parts {
		b.WriteString(p.str)
	}
	return Markup{str: b.String()}
}

// Repeat returns the payload repeated n times. Repetition introduces
// no new characters, so the result stays safe. Nonpositive n yields an
// empty Markup.
func (m Markup) Repeat(n int) Markup {
	if n <= 0 {
		return Markup{}
	}
	return Markup{str: strings.Repeat(m.str, n)}
}

// Join escapes every item and concatenates them with m as the
// separator.
func (m Markup) Join(items ...any) Markup {
	var ss = make([]string, len(items))
	for i, it := range items {
		ss[i] = Escape(it).str
	}
	return Markup{str: strings.Join(ss, m.str)}
}

// Replace returns m with the first n occurrences of old replaced by
// new (all of them if n < 0). Both operands are escaped first, so
// plain-text arguments match against the escaped payload.
func (m Markup) Replace(old, new any, n int) Markup {
	return Markup{str: strings.Replace(m.str, Escape(old).str, Escape(new).str, n)}
}

// ToUpper returns m with all letters upper-cased. Case mapping cannot
// produce one of the five special characters.
func (m Markup) ToUpper() Markup {
	return Markup{str: strings.ToUpper(m.str)}
}

// ToLower returns m with all letters lower-cased.
func (m Markup) ToLower() Markup {
	return Markup{str: strings.ToLower(m.str)}
}

// ToTitle returns m with the first letter of each word title-cased.
func (m Markup) ToTitle() Markup {
	return Markup{str: cases.Title(language.Und).String(m.str)}
}

// Capitalize returns m with its first letter upper-cased and the rest
// lowered.
func (m Markup) Capitalize() Markup {
	if m.str == "" {
		return m
	}
	r, size := utf8.DecodeRuneInString(m.str)
	return Markup{str: string(unicode.ToUpper(r)) + strings.ToLower(m.str[size:])}
}

// EqualFold reports whether m and the escaped form of v are equal
// under Unicode case folding. The comparison works on normalized
// copies; neither operand is modified.
func (m Markup) EqualFold(v any) bool {
	var folder = cases.Fold()
	return folder.String(m.str) == folder.String(Escape(v).str)
}

// TrimPrefix returns m without the given prefix. A plain-text operand
// is escaped first so that it compares against the escaped payload.
func (m Markup) TrimPrefix(v any) Markup {
	return Markup{str: strings.TrimPrefix(m.str, Escape(v).str)}
}

// TrimSuffix returns m without the given suffix. A plain-text operand
// is escaped first so that it compares against the escaped payload.
func (m Markup) TrimSuffix(v any) Markup {
	return Markup{str: strings.TrimSuffix(m.str, Escape(v).str)}
}

// TrimSpace returns m with leading and trailing white space removed.
func (m Markup) TrimSpace() Markup {
	return Markup{str: strings.TrimSpace(m.str)}
}

// Index returns the byte index of the first occurrence of the escaped
// form of v in m, or -1.
func (m Markup) Index(v any) int {
	return strings.Index(m.str, Escape(v).str)
}

// Contains reports whether the escaped form of v occurs in m.
func (m Markup) Contains(v any) bool {
	return m.Index(v) >= 0
}

// Split slices m around each instance of the escaped separator. The
// fragments of an escaped payload are themselves escaped, so the
// pieces stay Markup.
func (m Markup) Split(sep any) []Markup {
	return wrapAll(strings.Split(m.str, Escape(sep).str))
}

// SplitN slices m around the escaped separator into at most n pieces.
// The count semantics are those of strings.SplitN.
func (m Markup) SplitN(sep any, n int) []Markup {
	return wrapAll(strings.SplitN(m.str, Escape(sep).str, n))
}

// Cut slices m around the first instance of the escaped separator.
func (m Markup) Cut(sep any) (before, after Markup, found bool) {
	b, a, ok := strings.Cut(m.str, Escape(sep).str)
	return Markup{str: b}, Markup{str: a}, ok
}

// SplitLines slices m at line boundaries ("\n", "\r" and "\r\n"),
// excluding the line ends. A trailing line end produces no final empty
// fragment.
func (m Markup) SplitLines() []Markup {
	if m.str == "" {
		return nil
	}
	var lines []Markup
	var s = m.str
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, Markup{str: s})
			break
		}
		lines = append(lines, Markup{str: s[:i]})
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

func wrapAll(ss []string) []Markup {
	var ms = make([]Markup, len(ss))
	for i, s := range ss {
		ms[i] = Markup{str: s}
	}
	return ms
}
