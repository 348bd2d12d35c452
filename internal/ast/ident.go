package ast

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeIdent applies NFKC, which is how identifiers are compared:
// `ﬁle` and `file` name the same binding.
func NormalizeIdent(s string) string {
	return norm.NFKC.String(s)
}

// IsNormalizedIdent reports whether s is already in NFKC form.
func IsNormalizedIdent(s string) bool {
	return norm.NFKC.IsNormalString(s)
}

// IsIdentifier reports whether s is a single identifier: a letter or '_'
// followed by letters, digits, marks or '_'.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)):
		default:
			return false
		}
	}
	return true
}

// IsDottedName reports whether s is one or more identifiers joined by '.',
// the form import aliases use.
func IsDottedName(s string) bool {
	for part := range strings.SplitSeq(s, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}
