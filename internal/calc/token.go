package calc

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Token is one whitespace-separated field of an expression.
type Token struct {
	Text string
	Col  int // rune column of the first character
}

// Normalize applies NFKC so compatibility forms such as full-width digits
// and the full-width minus become their ASCII equivalents.
func Normalize(s string) string {
	return norm.NFKC.String(s)
}

// Tokenize splits s around runs of white space, recording rune columns.
func Tokenize(s string) []Token {
	var (
		toks  []Token
		start = -1
		col   int
		from  int
	)
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, Token{Text: s[start:i], Col: from})
				start = -1
			}
		} else if start < 0 {
			start, from = i, col
		}
		col++
	}
	if start >= 0 {
		toks = append(toks, Token{Text: s[start:], Col: from})
	}
	return toks
}
