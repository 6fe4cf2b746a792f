// Package webutil contains small helpers shared by the HTTP boundary and
// anything that renders user text into HTML.
package webutil

import "strings"

// EscapeHTML replaces the five HTML-significant characters with their
// entities. Ampersand is replaced first so entities produced by the later
// replacements are not escaped twice.
func EscapeHTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	text = strings.ReplaceAll(text, `"`, "&quot;")
	text = strings.ReplaceAll(text, "'", "&#39;")
	return text
}
