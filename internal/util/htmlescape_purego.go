//go:build purego

package util

// EscapeString returns s with the five special characters replaced by
// their entity forms. It returns s itself when nothing needs replacing.
//
// Portable single-pass backend. Behavior is identical to the default
// backend; only the allocation pattern differs.
func EscapeString(s string) string {
	if !NeedsEscape(s) {
		return s
	}
	var buf = make([]byte, 0, len(s)+8)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 128 {
			if r := htmlEscapeTable[b]; r != "" {
				buf = append(buf, r...)
				continue
			}
		}
		buf = append(buf, b)
	}
	return string(buf)
}
