package token

import "strconv"

// FormatNumberLiteral renders a float64 the way a NUMBER literal's source
// text canonicalizes it: the shortest decimal representation that round
// trips, always carrying a decimal point (42 -> "42.0"). This is used by
// the `tokenize` literal column and by the parenthesized AST printer's
// Literal case, both of which spec.md §6 specifies with the trailing ".0"
// preserved. It is distinct from value.Number.String, which spec.md §4.3
// requires to drop that trailing ".0" when printing an evaluated result.
func FormatNumberLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
