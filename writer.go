package markup

import (
	"io"

	"go101.org/markup/internal/util"
)

// An EscapeWriter escapes everything written through it before passing
// it on to the underlying writer. It lets a rendering layer pipe
// untrusted text straight into markup output without building
// intermediate strings.
type EscapeWriter struct {
	w io.Writer
}

func NewEscapeWriter(w io.Writer) EscapeWriter {
	return EscapeWriter{w: w}
}

// Write escapes data and writes the result. The returned count is
// len(data): the escaped form is longer, and callers account for their
// own input. The underlying writer is assumed to be memory based and
// never failing.
func (ew EscapeWriter) Write(data []byte) (n int, err error) {
	util.WriteEscapedBytes(ew.w, data)
	return len(data), nil
}

// WriteString is Write for a string, without the []byte conversion.
func (ew EscapeWriter) WriteString(s string) (n int, err error) {
	util.WriteEscapedString(ew.w, s)
	return len(s), nil
}
