package nlp

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize composes text to NFC so that precomposed and decomposed accents
// compare equal.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// FormatList renders items as "[a, b, c]".
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
