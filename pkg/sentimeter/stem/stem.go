// Package stem canonicalizes word tokens before lexicon lookup.
//
// A Stemmer is a narrow strategy: Identity leaves tokens untouched, while
// NewEnglish wraps the snowball stemmer. Backends that produce several
// candidate stems plug in through Adapter, which resolves ties
// deterministically.
package stem

import (
	"fmt"
	"sort"

	"github.com/kljensen/snowball"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
)

// Stemmer reduces a word to its canonical form.
type Stemmer interface {
	Stem(word string) string
}

// Identity is a no-op Stemmer used when stemming is disabled.
type Identity struct{}

// Stem returns the word unchanged.
func (Identity) Stem(word string) string { return word }

// CandidateFunc returns zero or more candidate stems for a word.
// Returning no candidates means the word should pass through unchanged.
type CandidateFunc func(word string) []string

// Adapter turns a candidate source into a Stemmer. When the source yields
// more than one candidate the lexicographically smallest wins, so lookup
// behavior stays deterministic regardless of backend ordering.
type Adapter struct {
	candidates CandidateFunc
}

// NewAdapter wraps a candidate source.
func NewAdapter(fn CandidateFunc) *Adapter {
	return &Adapter{candidates: fn}
}

// Stem selects the canonical form among the source's candidates.
func (a *Adapter) Stem(word string) string {
	cands := a.candidates(word)
	if len(cands) == 0 {
		return word
	}
	if len(cands) > 1 {
		sort.Strings(cands)
	}
	return cands[0]
}

// NewEnglish builds a snowball-backed English stemmer. It probes the
// backend once so that an unusable stemmer surfaces at construction
// rather than mid-analysis.
func NewEnglish() (Stemmer, error) {
	if _, err := snowball.Stem("analyses", "english", false); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStemmerUnavailable, err)
	}

	return NewAdapter(func(word string) []string {
		stemmed, err := snowball.Stem(word, "english", false)
		if err != nil || stemmed == "" {
			return nil
		}
		return []string{stemmed}
	}), nil
}
