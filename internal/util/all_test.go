package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscapeString(t *testing.T) {
	var check = func(in, expected string) {
		if out := EscapeString(in); out != expected {
			t.Errorf("escape output not match: %q vs. %q", out, expected)
		}
		if n := EscapedLen(in); n != len(expected) {
			t.Errorf("escaped length not match for %q: %d vs. %d", in, n, len(expected))
		}
		if needs := NeedsEscape(in); needs != (in != expected) {
			t.Errorf("NeedsEscape(%q) not match: %v vs. %v", in, needs, in != expected)
		}
	}

	// empty
	check("", "")
	// ascii
	check("abcd&><'\"efgh", "abcd&amp;&gt;&lt;&#39;&#34;efgh")
	check("&><'\"efgh", "&amp;&gt;&lt;&#39;&#34;efgh")
	check("abcd&><'\"", "abcd&amp;&gt;&lt;&#39;&#34;")
	// 2-byte runes
	check("こんにちは&><'\"こんばんは", "こんにちは&amp;&gt;&lt;&#39;&#34;こんばんは")
	// 4-byte runes
	check("\U0001F363\U0001F362&><'\"\U0001F37A xyz", "\U0001F363\U0001F362&amp;&gt;&lt;&#39;&#34;\U0001F37A xyz")
	// nothing to do
	check("abcdefgh", "abcdefgh")
	check("  ", "  ")
}

func TestEscapeStringLeavesCleanInputAlone(t *testing.T) {
	var s = strings.Repeat("clean text, no specials. ", 8)
	if out := EscapeString(s); out != s {
		t.Errorf("clean input modified: %q vs. %q", out, s)
	}
	if n := EscapedLen(s); n != len(s) {
		t.Errorf("clean input length not match: %d vs. %d", n, len(s))
	}
}

func TestEscapedOutputHasNoLiteralSpecials(t *testing.T) {
	var remover = strings.NewReplacer(
		"&amp;", "", "&lt;", "", "&gt;", "", "&#34;", "", "&#39;", "")
	for _, in := range []string{
		"", "plain", `<script>alert("' & '")</script>`, "&&&&", `<<>>""''`,
		"a<b>c\"d'e&f", "こん<にちは>",
	} {
		var rest = remover.Replace(EscapeString(in))
		if strings.IndexAny(rest, htmlSpecialChars) >= 0 {
			t.Errorf("literal special left in escape output of %q: %q", in, rest)
		}
	}
}

func TestWriteEscaped(t *testing.T) {
	var in = `<b>"a" & 'b'</b>`
	var expected = "&lt;b&gt;&#34;a&#34; &amp; &#39;b&#39;&lt;/b&gt;"

	var buf bytes.Buffer
	WriteEscapedString(&buf, in)
	if out := buf.String(); out != expected {
		t.Errorf("WriteEscapedString output not match: %q vs. %q", out, expected)
	}

	buf.Reset()
	WriteEscapedBytes(&buf, []byte(in))
	if out := buf.String(); out != expected {
		t.Errorf("WriteEscapedBytes output not match: %q vs. %q", out, expected)
	}

	buf.Reset()
	WriteEscapedString(&buf, "no specials")
	if out := buf.String(); out != "no specials" {
		t.Errorf("clean WriteEscapedString output not match: %q", out)
	}
}

func TestWriteEscapedAgreesWithEscapeString(t *testing.T) {
	for _, in := range []string{
		"", "&", "x&", "&x", `"''"`, "<html>\n<body>&nbsp;</body>\n</html>",
		"\U0001F37A&\U0001F37A",
	} {
		var buf bytes.Buffer
		WriteEscapedString(&buf, in)
		if buf.String() != EscapeString(in) {
			t.Errorf("writer and escaper not match for %q: %q vs. %q", in, buf.String(), EscapeString(in))
		}
	}
}

var benchClean = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 64)
var benchDirty = strings.Repeat(`<a href="x">Tom & Jerry's</a> `, 64)

func BenchmarkEscapeString_clean(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EscapeString(benchClean)
	}
}

func BenchmarkEscapeString_dirty(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EscapeString(benchDirty)
	}
}
