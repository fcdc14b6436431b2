// Package lexicon defines the read-only word lookup tables the scoring
// engine runs against: a positive/negative polarity lexicon and an
// NRC-style ten-tag emotion association lexicon.
//
// The Store interface decouples the engine from the backing
// representation; memlex provides the in-memory implementation and sqlex
// loads a compiled SQLite lexicon file. Absence from a lexicon means
// "unknown word" and is never an error.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
)

// Store provides read-only lexicon lookups. Implementations must be safe
// for concurrent readers; nothing mutates a Store after construction.
// Lookups are case-sensitive against already-lowercased tokens.
type Store interface {
	// PolarityOf reports the polarity of a word, or ok=false when the
	// word is not in the polarity lexicon.
	PolarityOf(word string) (Polarity, bool)

	// EmotionsOf reports the emotion associations of a word, or
	// ok=false when the word is not in the emotion lexicon.
	EmotionsOf(word string) (EmotionVector, bool)
}

// Polarity classifies a lexicon word as positive or negative. For every
// word present in the lexicon exactly one flag is set, never both and
// never neither.
type Polarity struct {
	Positive bool
	Negative bool
}

// Valid reports whether exactly one flag is set.
func (p Polarity) Valid() bool { return p.Positive != p.Negative }

// Score is the per-token contribution of this polarity: +1 or -1.
func (p Polarity) Score() int {
	if p.Positive {
		return 1
	}
	return -1
}

// Tags lists the ten emotion/sentiment tags in canonical order.
var Tags = []string{
	"anger", "anticipation", "disgust", "fear", "joy",
	"negative", "positive", "sadness", "surprise", "trust",
}

// EmotionVector maps the ten fixed emotion/sentiment tags to
// non-negative counts. The zero value is the canonical null vector.
type EmotionVector struct {
	Anger        int `json:"anger" yaml:"anger"`
	Anticipation int `json:"anticipation" yaml:"anticipation"`
	Disgust      int `json:"disgust" yaml:"disgust"`
	Fear         int `json:"fear" yaml:"fear"`
	Joy          int `json:"joy" yaml:"joy"`
	Negative     int `json:"negative" yaml:"negative"`
	Positive     int `json:"positive" yaml:"positive"`
	Sadness      int `json:"sadness" yaml:"sadness"`
	Surprise     int `json:"surprise" yaml:"surprise"`
	Trust        int `json:"trust" yaml:"trust"`
}

// Add returns the element-wise sum of two vectors.
func (v EmotionVector) Add(o EmotionVector) EmotionVector {
	return EmotionVector{
		Anger:        v.Anger + o.Anger,
		Anticipation: v.Anticipation + o.Anticipation,
		Disgust:      v.Disgust + o.Disgust,
		Fear:         v.Fear + o.Fear,
		Joy:          v.Joy + o.Joy,
		Negative:     v.Negative + o.Negative,
		Positive:     v.Positive + o.Positive,
		Sadness:      v.Sadness + o.Sadness,
		Surprise:     v.Surprise + o.Surprise,
		Trust:        v.Trust + o.Trust,
	}
}

// IsZero reports whether every tag is zero.
func (v EmotionVector) IsZero() bool { return v == EmotionVector{} }

// Get returns the count for a tag name, or ok=false for an unknown tag.
func (v EmotionVector) Get(tag string) (int, bool) {
	switch tag {
	case "anger":
		return v.Anger, true
	case "anticipation":
		return v.Anticipation, true
	case "disgust":
		return v.Disgust, true
	case "fear":
		return v.Fear, true
	case "joy":
		return v.Joy, true
	case "negative":
		return v.Negative, true
	case "positive":
		return v.Positive, true
	case "sadness":
		return v.Sadness, true
	case "surprise":
		return v.Surprise, true
	case "trust":
		return v.Trust, true
	}
	return 0, false
}

// Inc increments the count for a tag name. It reports false for an
// unknown tag and leaves the vector untouched.
func (v *EmotionVector) Inc(tag string) bool {
	switch tag {
	case "anger":
		v.Anger++
	case "anticipation":
		v.Anticipation++
	case "disgust":
		v.Disgust++
	case "fear":
		v.Fear++
	case "joy":
		v.Joy++
	case "negative":
		v.Negative++
	case "positive":
		v.Positive++
	case "sadness":
		v.Sadness++
	case "surprise":
		v.Surprise++
	case "trust":
		v.Trust++
	default:
		return false
	}
	return true
}

// Map renders the vector as a tag->count mapping with exactly the ten
// fixed keys, for consumers that want a serializable view.
func (v EmotionVector) Map() map[string]int {
	m := make(map[string]int, len(Tags))
	for _, tag := range Tags {
		n, _ := v.Get(tag)
		m[tag] = n
	}
	return m
}

// LoadPolarityYAML loads a polarity lexicon from a YAML file.
//
// Expected format:
//
//	positive: [happy, good, love]
//	negative: [sad, bad, hate]
//
// Words are lowercased. A word appearing in both lists violates the
// polarity exclusivity invariant and fails the load.
func LoadPolarityYAML(path string) (map[string]Polarity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make(map[string]Polarity, len(doc.Positive)+len(doc.Negative))
	for _, w := range doc.Positive {
		entries[strings.ToLower(w)] = Polarity{Positive: true}
	}
	for _, w := range doc.Negative {
		w = strings.ToLower(w)
		if entries[w].Positive {
			return nil, fmt.Errorf("%w: %q is both positive and negative", internalerr.ErrInvalidLexicon, w)
		}
		entries[w] = Polarity{Negative: true}
	}

	return entries, nil
}

// LoadEmotionsYAML loads an emotion lexicon from a YAML file.
//
// Expected format:
//
//	words:
//	  - word: happy
//	    tags: [joy, positive, anticipation, trust]
//
// Each listed tag increments that tag's count by one. Unknown tag names
// fail the load.
func LoadEmotionsYAML(path string) (map[string]EmotionVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Words []struct {
			Word string   `yaml:"word"`
			Tags []string `yaml:"tags"`
		} `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	entries := make(map[string]EmotionVector, len(doc.Words))
	for _, e := range doc.Words {
		word := strings.ToLower(e.Word)
		vec := entries[word]
		for _, tag := range e.Tags {
			if !vec.Inc(strings.ToLower(tag)) {
				return nil, fmt.Errorf("%w: unknown emotion tag %q for word %q", internalerr.ErrInvalidLexicon, tag, e.Word)
			}
		}
		entries[word] = vec
	}

	return entries, nil
}
