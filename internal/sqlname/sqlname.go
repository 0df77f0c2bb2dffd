// Package sqlname validates and derives unquoted SQL identifiers.
package sqlname

import "strings"

// IsValid reports whether name is safe to use as an unquoted SQL
// identifier: non-empty, only letters, digits and underscores, and not
// starting with a digit.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Derive produces a valid identifier from an arbitrary type name by
// lowercasing it and dropping every character that is not legal in an
// identifier. Leading digits are dropped as well. The result always passes
// IsValid.
func Derive(typeName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(typeName) {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				continue
			}
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// QuoteLiteral renders value as a single-quoted SQL string literal,
// doubling any embedded quotes.
func QuoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
