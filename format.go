package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go101.org/markup/internal/util"
)

// A FormatError describes an invalid template, or a mismatch between a
// template and the supplied arguments, in Format or FormatNamed.
type FormatError struct {
	Template string
	Pos      int // byte offset of the offending placeholder
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("markup: bad format at byte %d of %q: %s", e.Pos, e.Template, e.Reason)
}

// Format substitutes the arguments into the template payload. The
// template is the receiver, so it is already escaped; every argument
// is escaped individually before substitution.
//
// Placeholders are "{}" (auto-numbered) and "{2}" (explicit index),
// optionally with a fmt verb after a colon, as in "{0:%.2f}". "{{" and
// "}}" are literal braces. Mixing auto-numbered and explicit
// placeholders, referring to a missing argument, or supplying unused
// arguments to an auto-numbered template all yield a *FormatError.
func (m Markup) Format(args ...any) (Markup, error) {
	return m.vformat(args, nil)
}

// FormatNamed is Format with "{name}" placeholders looked up in
// fields. An unknown name yields a *FormatError.
func (m Markup) FormatNamed(fields map[string]any) (Markup, error) {
	return m.vformat(nil, fields)
}

func (m Markup) vformat(args []any, fields map[string]any) (Markup, error) {
	var b strings.Builder
	b.Grow(len(m.str))
	var s = m.str
	var auto = 0
	var autoUsed, explicitUsed = false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '}' {
			if i+1 < len(s) && s[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return Markup{}, &FormatError{m.str, i, "single '}' outside of a placeholder"}
		}
		if c != '{' {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '{' {
			b.WriteByte('{')
			i++
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			return Markup{}, &FormatError{m.str, i, "unclosed placeholder"}
		}
		end += i
		name, verb, hasVerb := strings.Cut(s[i+1:end], ":")

		var v any
		switch {
		case name == "":
			if explicitUsed {
				return Markup{}, &FormatError{m.str, i, "cannot mix auto-numbered and explicit placeholders"}
			}
			autoUsed = true
			if auto >= len(args) {
				return Markup{}, &FormatError{m.str, i, "auto-numbered placeholder " + strconv.Itoa(auto) + ": not enough arguments"}
			}
			v = args[auto]
			auto++
		case isDecimal(name):
			if autoUsed {
				return Markup{}, &FormatError{m.str, i, "cannot mix auto-numbered and explicit placeholders"}
			}
			explicitUsed = true
			idx, err := strconv.Atoi(name)
			if err != nil || idx >= len(args) {
				return Markup{}, &FormatError{m.str, i, "argument index " + name + " out of range"}
			}
			v = args[idx]
		default:
			fv, ok := fields[name]
			if !ok {
				return Markup{}, &FormatError{m.str, i, "unknown field name " + strconv.Quote(name)}
			}
			v = fv
		}

		out, reason := formatField(v, verb, hasVerb)
		if reason != "" {
			return Markup{}, &FormatError{m.str, i, reason}
		}
		b.WriteString(out)
		i = end
	}
	if autoUsed && auto < len(args) {
		return Markup{}, &FormatError{m.str, len(s), "too many arguments for auto-numbered template"}
	}
	return Markup{str: b.String()}, nil
}

// formatField renders one substituted value as escaped text. A
// non-empty reason signals a caller error.
func formatField(v any, verb string, hasVerb bool) (out, reason string) {
	if h, ok := v.(HTMLer); ok {
		if hasVerb && verb != "" {
			return "", "format verb " + strconv.Quote(verb) + " applied to a value that renders its own markup"
		}
		return h.HTML().str, ""
	}
	if !hasVerb || verb == "" {
		return Escape(v).str, ""
	}
	if verb[0] != '%' {
		return "", "format verb " + strconv.Quote(verb) + " does not start with '%'"
	}
	return util.EscapeString(fmt.Sprintf(verb, v)), ""
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Sprintf formats according to fmt rules and escapes every
// interpolated argument. Text produced by the %s, %v, %q and %c verbs
// is escaped after formatting, except that Markup and HTMLer arguments
// contribute their payload unchanged under %s and %v. All other verbs
// format the raw value; numeric output cannot contain special
// characters. The format template itself is already escaped, being
// Markup.
func Sprintf(format Markup, args ...any) Markup {
	var wrapped = make([]any, len(args))
	for i, a := range args {
		wrapped[i] = escapeArg{v: a}
	}
	return Markup{str: fmt.Sprintf(format.str, wrapped...)}
}

// escapeArg defers formatting of one Sprintf operand to fmt, then
// escapes the result where the verb may have produced special
// characters.
type escapeArg struct {
	v any
}

func (a escapeArg) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if h, ok := a.v.(HTMLer); ok {
			fmt.Fprintf(f, replayVerb(f, verb), h.HTML().str)
			return
		}
		io.WriteString(f, util.EscapeString(fmt.Sprintf(replayVerb(f, verb), a.v)))
	case 'q', 'c':
		// %q quotes and %c may produce a literal special character.
		io.WriteString(f, util.EscapeString(fmt.Sprintf(replayVerb(f, verb), a.v)))
	default:
		fmt.Fprintf(f, replayVerb(f, verb), a.v)
	}
}

// replayVerb rebuilds the format directive (flags, width, precision,
// verb) so the operand can be handed back to fmt.
func replayVerb(f fmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "-+# 0" {
		if f.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}
