package textutil

import "strings"

// SanitizeToken converts a free-form label to a lowercase file-name token.
// Whitespace runs become single underscores and anything outside
// [a-z0-9_] is dropped. Returns fallback when nothing survives, which is
// the common case for Cyrillic cluster names.
func SanitizeToken(value, fallback string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('_')
		}
		for _, r := range field {
			switch {
			case r >= 'a' && r <= 'z':
				b.WriteRune(r)
			case r >= '0' && r <= '9':
				b.WriteRune(r)
			case r == '_':
				b.WriteRune(r)
			}
		}
	}
	out := b.String()
	if strings.Trim(out, "_") == "" {
		return fallback
	}
	return out
}

// Ternary is a generic conditional helper that returns a if cond is true, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
