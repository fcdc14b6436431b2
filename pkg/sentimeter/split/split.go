// Package split turns raw text into an ordered sequence of sentences.
//
// Sentence-boundary detection is treated as an external concern: the
// scoring engine only depends on the Splitter interface. Simple is a
// rule-based default so the library works without extra collaborators;
// anything smarter can be injected via Func.
package split

import "strings"

// Splitter produces the ordered sentences of a text.
type Splitter interface {
	Split(text string) ([]string, error)
}

// Func adapts a plain function to the Splitter interface.
type Func func(text string) ([]string, error)

// Split implements Splitter.
func (f Func) Split(text string) ([]string, error) { return f(text) }

// abbreviations that end with a period without ending a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "eg": {}, "ie": {}, "approx": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// Simple is a rule-based sentence splitter. Sentences end at '.', '!'
// or '?' followed by whitespace or end of input, with exceptions for
// common abbreviations, decimal numbers and ellipses. Original casing
// and punctuation are preserved; surrounding whitespace is trimmed.
type Simple struct{}

// NewSimple returns the default rule-based splitter.
func NewSimple() Simple { return Simple{} }

// Split implements Splitter. It never fails.
func (Simple) Split(text string) ([]string, error) {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		if r == '.' {
			// Decimal number: digit on both sides.
			if i > 0 && i+1 < len(runes) && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
				continue
			}
			// Ellipsis or abbreviation periods run together.
			if i+1 < len(runes) && runes[i+1] == '.' {
				continue
			}
			if i > 0 && runes[i-1] == '.' {
				continue
			}
			if isAbbreviation(runes, start, i) {
				continue
			}
		}

		// Swallow trailing closers like quotes and parens.
		end := i + 1
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}

		// Boundary only when followed by whitespace or end of input.
		if end < len(runes) && !isSpace(runes[end]) {
			continue
		}

		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			sentences = append(sentences, s)
		}
		start = end
		i = end - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}

	return sentences, nil
}

// isAbbreviation reports whether the word ending at the period in
// runes[dot] is a known abbreviation.
func isAbbreviation(runes []rune, start, dot int) bool {
	w := dot
	for w > start && isWordRune(runes[w-1]) {
		w--
	}
	word := strings.ToLower(string(runes[w:dot]))
	if word == "" {
		return false
	}
	// Single letters read as initials ("J. Smith").
	if len([]rune(word)) == 1 && word != "i" && word != "a" {
		return true
	}
	_, ok := abbreviations[word]
	return ok
}

func isWordRune(r rune) bool {
	return r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}
