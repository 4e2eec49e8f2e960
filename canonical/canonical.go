package canonical

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonicalize returns the tag identifier for a type signature.
//
// If the signature contains an upper-case letter, the scan starts there and
// copies ASCII letters and digits until a generic opening delimiter ('<' or
// '['), at which point the remainder is canonicalized and appended. Otherwise
// every non-alphanumeric character is dropped and the first character is
// title-cased. A signature without letters or digits yields "".
func Canonicalize(sig string) string {
	start := strings.IndexFunc(sig, unicode.IsUpper)
	if start < 0 {
		return fallback(sig)
	}

	rest := sig[start:]

	var sb strings.Builder
	for i, r := range rest {
		if isAlnum(r) {
			sb.WriteRune(r)
		}

		if isGenericOpen(r) {
			sb.WriteString(Canonicalize(rest[i+utf8.RuneLen(r):]))
			break
		}
	}

	return sb.String()
}

// fallback handles signatures without any upper-case letter, e.g. "i64" or
// "map[string]int".
func fallback(sig string) string {
	cleaned := strings.Map(func(r rune) rune {
		if isAlnum(r) {
			return r
		}

		return -1
	}, sig)

	if cleaned == "" {
		return ""
	}

	_, n := utf8.DecodeRuneInString(cleaned)

	return cases.Title(language.Und, cases.NoLower).String(cleaned[:n]) + cleaned[n:]
}

// IsIdentifier reports whether s can be used as an explicit tag.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}

func isAlnum(r rune) bool {
	return r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

func isGenericOpen(r rune) bool {
	return r == '<' || r == '['
}
