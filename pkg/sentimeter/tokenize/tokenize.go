package tokenize

import (
	"strings"
	"unicode"
)

// Words splits a sentence into lowercase word tokens.
//
// Punctuation and digits are removed before whitespace splitting, so
// "happy2" becomes "happy" and "well-known" becomes "wellknown". Pieces
// that are empty after stripping are dropped. Token order follows source
// order. Any input, including the empty string, is valid.
func Words(sentence string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range sentence {
		switch {
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		case unicode.IsLetter(r):
			current.WriteRune(unicode.ToLower(r))
		default:
			// Punctuation, digits and symbols are stripped without
			// acting as a token boundary.
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
