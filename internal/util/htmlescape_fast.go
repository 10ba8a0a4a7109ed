//go:build !purego

package util

// EscapeString returns s with the five special characters replaced by
// their entity forms. It returns s itself when nothing needs replacing.
//
// This backend measures first, then writes once into an exactly sized
// buffer, so large inputs never reallocate mid-copy.
func EscapeString(s string) string {
	var n = EscapedLen(s)
	if n == len(s) {
		return s
	}
	var buf = make([]byte, n)
	var k = 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 128 {
			if r := htmlEscapeTable[b]; r != "" {
				k += copy(buf[k:], r)
				continue
			}
		}
		buf[k] = b
		k++
	}
	return string(buf)
}
