package graphviz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"arg0", "arg0"},
		{`a<b & "c">`, "a&lt;b &amp; &quot;c&quot;&gt;"},
		{"<<>>", "&lt;&lt;&gt;&gt;"},
		{"Vec<T>", "Vec&lt;T&gt;"},
	} {
		assert.Equal(t, tc.exp, EscapeHTML(tc.in), "input %q", tc.in)
	}
}

// Escaped output never contains a raw special character, even when the
// input was escaped already.
func TestEscapeHTMLTotal(t *testing.T) {
	inputs := []string{
		`let x: &mut [u8; 4] = "...";`,
		"&amp;&lt;&gt;&quot;",
		strings.Repeat(`<&">`, 100),
	}

	for _, in := range inputs {
		out := EscapeHTML(in)

		clean := strings.NewReplacer("&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "").Replace(out)

		assert.NotContains(t, clean, "<", "input %q", in)
		assert.NotContains(t, clean, ">", "input %q", in)
		assert.NotContains(t, clean, "&", "input %q", in)
		assert.NotContains(t, clean, `"`, "input %q", in)
	}
}
