// Package memlex provides the in-memory lexicon.Store implementation.
package memlex

import (
	"fmt"
	"strings"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
)

// Store is an immutable in-memory lexicon. It copies its inputs at
// construction and never mutates them afterwards, so it is safe to share
// across concurrent analyses.
type Store struct {
	polarity map[string]lexicon.Polarity
	emotions map[string]lexicon.EmotionVector
}

// New builds a Store from polarity and emotion tables. Either table may
// be nil. Words are lowercased. A polarity entry with both or neither
// flag set fails construction.
func New(polarity map[string]lexicon.Polarity, emotions map[string]lexicon.EmotionVector) (*Store, error) {
	s := &Store{
		polarity: make(map[string]lexicon.Polarity, len(polarity)),
		emotions: make(map[string]lexicon.EmotionVector, len(emotions)),
	}

	for word, p := range polarity {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: polarity of %q must be exactly one of positive/negative", internalerr.ErrInvalidLexicon, word)
		}
		s.polarity[strings.ToLower(word)] = p
	}
	for word, v := range emotions {
		s.emotions[strings.ToLower(word)] = v
	}

	return s, nil
}

// PolarityOf implements lexicon.Store.
func (s *Store) PolarityOf(word string) (lexicon.Polarity, bool) {
	p, ok := s.polarity[word]
	return p, ok
}

// EmotionsOf implements lexicon.Store.
func (s *Store) EmotionsOf(word string) (lexicon.EmotionVector, bool) {
	v, ok := s.emotions[word]
	return v, ok
}

// PolarityWords returns the number of polarity lexicon entries.
func (s *Store) PolarityWords() int { return len(s.polarity) }

// EmotionWords returns the number of emotion lexicon entries.
func (s *Store) EmotionWords() int { return len(s.emotions) }
