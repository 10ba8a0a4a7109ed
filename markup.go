// Package markup implements an escape function and a Markup string
// type to replace HTML/XML special characters with safe
// representations.
//
// The five characters with special meaning in markup (& < > " ') are
// replaced by entity forms, and text which has been through that
// replacement is tagged by wrapping it in the Markup type. Every
// operation which combines a Markup value with other text escapes the
// other text first, so composed values stay safe to emit without
// further processing.
package markup

import (
	"fmt"
	"strconv"

	"go101.org/markup/internal/util"
)

// A Markup value holds text that is ready to be inserted into an HTML
// or XML document, either because it was escaped or because it was
// marked trusted. The zero value is the empty (safe) string.
//
// The type itself is the taint tag. The only ways to obtain a non-zero
// Markup are Escape, EscapeSilent, Trusted and the composition
// methods, all of which keep the payload fully escaped.
type Markup struct {
	str string
}

// HTMLer is implemented by values which render themselves as markup.
// Escape trusts the result completely and inserts it without escaping;
// the implementer is responsible for its safety.
type HTMLer interface {
	HTML() Markup
}

// Trusted marks s as markup that needs no escaping.
//
// This is the single trust boundary of the package. Passing text that
// contains unescaped untrusted input here reintroduces exactly the
// injection problem the package exists to prevent. Use Escape unless
// the text is a literal or comes from an escaper.
func Trusted(s string) Markup {
	return Markup{str: s}
}

// HTML returns m itself, so Markup implements HTMLer.
func (m Markup) HTML() Markup { return m }

// String returns the escaped payload.
func (m Markup) String() string { return m.str }

// Len returns the length of the escaped payload in bytes.
func (m Markup) Len() int { return len(m.str) }

// IsEmpty reports whether the payload is empty.
func (m Markup) IsEmpty() bool { return m.str == "" }

// Escape converts v to a Markup value safe for insertion into a
// document.
//
// A Markup argument is returned unchanged. A value implementing HTMLer
// renders itself and the result is trusted without re-escaping; an
// HTML method that panics is not recovered here. Booleans and numeric
// values are formatted directly, as their text never contains special
// characters. Everything else, strings included, is converted to its
// text form and run through the escaper. Note that a nil argument
// renders as Go's canonical "<nil>" and therefore comes back escaped;
// see EscapeSilent.
func Escape(v any) Markup {
	switch x := v.(type) {
	case Markup:
		return x
	case HTMLer:
		return x.HTML()
	case string:
		return Markup{str: util.EscapeString(x)}
	case bool:
		return Markup{str: strconv.FormatBool(x)}
	case int:
		return Markup{str: strconv.Itoa(x)}
	case int8:
		return Markup{str: strconv.FormatInt(int64(x), 10)}
	case int16:
		return Markup{str: strconv.FormatInt(int64(x), 10)}
	case int32:
		return Markup{str: strconv.FormatInt(int64(x), 10)}
	case int64:
		return Markup{str: strconv.FormatInt(x, 10)}
	case uint:
		return Markup{str: strconv.FormatUint(uint64(x), 10)}
	case uint8:
		return Markup{str: strconv.FormatUint(uint64(x), 10)}
	case uint16:
		return Markup{str: strconv.FormatUint(uint64(x), 10)}
	case uint32:
		return Markup{str: strconv.FormatUint(uint64(x), 10)}
	case uint64:
		return Markup{str: strconv.FormatUint(x, 10)}
	case float32:
		return Markup{str: strconv.FormatFloat(float64(x), 'g', -1, 32)}
	case float64:
		return Markup{str: strconv.FormatFloat(x, 'g', -1, 64)}
	default:
		return Markup{str: util.EscapeString(fmt.Sprint(v))}
	}
}

// EscapeSilent is Escape, except that a nil argument becomes an empty
// Markup instead of the text "<nil>". Convenient in templating, where
// an absent value should render as nothing.
func EscapeSilent(v any) Markup {
	if v == nil {
		return Markup{}
	}
	return Escape(v)
}
