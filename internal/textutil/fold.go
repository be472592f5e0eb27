package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a label for case-insensitive comparison: trims
// surrounding whitespace, NFC-composes, and lowercases.
func Fold(value string) string {
	return FoldText(strings.TrimSpace(value))
}

// FoldText normalizes free text for substring search: NFC-composes and
// lowercases without trimming. A padded search term keeps its literal
// spacing and only matches that spacing.
func FoldText(value string) string {
	return strings.ToLower(norm.NFC.String(value))
}
