package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a url-safe token from display text: lowercase, every run
// of characters outside [a-z0-9] collapsed into a single hyphen, no leading
// or trailing hyphen. Empty in, empty out.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = nonAlphanumericRegex.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// CleanText trims an element's visible text and collapses inner whitespace,
// the shape scraped product names arrive in.
func CleanText(text string) string {
	text = strings.Trim(text, " \n\t")
	return whitespaceRegex.ReplaceAllString(text, " ")
}
