package graphviz

import (
	"fmt"
	"strings"
)

// htmlEsc covers the characters significant inside DOT html-like labels.
var htmlEsc = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML makes s safe to embed into an html-like label or table cell.
func EscapeHTML(s string) string {
	return htmlEsc.Replace(s)
}

func escape(x fmt.Stringer) string {
	return EscapeHTML(x.String())
}
