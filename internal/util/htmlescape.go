package util

import (
	"io"
	"strings"
)

// NOTE: the following write operations assume that the write target is memory based.
//       That means no errors should happen in the writing process.

// Replacements for the five HTML/XML special characters.
// All five are ASCII, so the tables may be indexed by byte and
// byte-wise scanning is safe over UTF-8 text.
var htmlEscapeTable = [128]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&#34;",
	'\'': "&#39;",
}

var htmlEscapeByteTable = [128][]byte{
	'&':  []byte("&amp;"),
	'<':  []byte("&lt;"),
	'>':  []byte("&gt;"),
	'"':  []byte("&#34;"),
	'\'': []byte("&#39;"),
}

const htmlSpecialChars = `&<>"'`

// NeedsEscape reports whether s contains at least one of the five
// special characters.
func NeedsEscape(s string) bool {
	return strings.IndexAny(s, htmlSpecialChars) >= 0
}

// EscapedLen returns the length of EscapeString(s) without building it.
// This is the counting pass of the escaper; callers sizing an output
// buffer for several fragments may sum it up front.
func EscapedLen(s string) (n int) {
	n = len(s)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 128 {
			continue
		}
		if r := htmlEscapeTable[b]; r != "" {
			n += len(r) - 1
		}
	}
	return
}

// WriteEscapedString writes s to w with the five special characters
// replaced.
func WriteEscapedString(w io.Writer, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 128 {
			continue
		}
		r := htmlEscapeTable[b]
		if r != "" {
			io.WriteString(w, s[last:i])
			io.WriteString(w, r)
			last = i + 1
		}
	}
	io.WriteString(w, s[last:])
}

// WriteEscapedBytes writes data to w with the five special characters
// replaced.
func WriteEscapedBytes(w io.Writer, data []byte) {
	last := 0
	for i, b := range data {
		if b >= 128 {
			continue
		}
		r := htmlEscapeByteTable[b]
		if r != nil {
			w.Write(data[last:i])
			w.Write(r)
			last = i + 1
		}
	}
	w.Write(data[last:])
}
