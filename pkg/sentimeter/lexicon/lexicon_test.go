package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestPolarityScore(t *testing.T) {
	if got := (Polarity{Positive: true}).Score(); got != 1 {
		t.Errorf("positive Score() = %d, want 1", got)
	}
	if got := (Polarity{Negative: true}).Score(); got != -1 {
		t.Errorf("negative Score() = %d, want -1", got)
	}
}

func TestPolarityValid(t *testing.T) {
	cases := []struct {
		p    Polarity
		want bool
	}{
		{Polarity{Positive: true}, true},
		{Polarity{Negative: true}, true},
		{Polarity{}, false},
		{Polarity{Positive: true, Negative: true}, false},
	}
	for _, c := range cases {
		if got := c.p.Valid(); got != c.want {
			t.Errorf("Valid(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestEmotionVectorAdd(t *testing.T) {
	a := EmotionVector{Joy: 1, Trust: 2}
	b := EmotionVector{Joy: 1, Anger: 3}
	got := a.Add(b)
	want := EmotionVector{Joy: 2, Trust: 2, Anger: 3}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestEmotionVectorZero(t *testing.T) {
	var v EmotionVector
	if !v.IsZero() {
		t.Error("zero value should be the null vector")
	}
	v.Joy = 1
	if v.IsZero() {
		t.Error("vector with joy=1 should not be null")
	}
}

func TestEmotionVectorIncAndGet(t *testing.T) {
	var v EmotionVector
	for _, tag := range Tags {
		if !v.Inc(tag) {
			t.Errorf("Inc(%q) rejected a canonical tag", tag)
		}
		if n, ok := v.Get(tag); !ok || n != 1 {
			t.Errorf("Get(%q) = %d, %v after Inc", tag, n, ok)
		}
	}
	if v.Inc("boredom") {
		t.Error("Inc should reject unknown tags")
	}
	if _, ok := v.Get("boredom"); ok {
		t.Error("Get should reject unknown tags")
	}
}

func TestEmotionVectorMapHasAllTags(t *testing.T) {
	m := (EmotionVector{Joy: 2}).Map()
	if len(m) != len(Tags) {
		t.Fatalf("Map has %d keys, want %d", len(m), len(Tags))
	}
	want := map[string]int{
		"anger": 0, "anticipation": 0, "disgust": 0, "fear": 0, "joy": 2,
		"negative": 0, "positive": 0, "sadness": 0, "surprise": 0, "trust": 0,
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Map = %v, want %v", m, want)
	}
}

func TestLoadPolarityYAML(t *testing.T) {
	path := writeFile(t, "polarity.yaml", `
positive: [Happy, good]
negative: [sad, bad]
`)
	entries, err := LoadPolarityYAML(path)
	if err != nil {
		t.Fatalf("LoadPolarityYAML: %v", err)
	}
	if p, ok := entries["happy"]; !ok || !p.Positive {
		t.Errorf("entry for happy = %+v, %v", p, ok)
	}
	if p, ok := entries["sad"]; !ok || !p.Negative {
		t.Errorf("entry for sad = %+v, %v", p, ok)
	}
	for word, p := range entries {
		if !p.Valid() {
			t.Errorf("entry %q violates polarity exclusivity: %+v", word, p)
		}
	}
}

func TestLoadPolarityYAMLRejectsConflict(t *testing.T) {
	path := writeFile(t, "polarity.yaml", `
positive: [fine]
negative: [fine]
`)
	if _, err := LoadPolarityYAML(path); !errors.Is(err, internalerr.ErrInvalidLexicon) {
		t.Errorf("expected ErrInvalidLexicon, got %v", err)
	}
}

func TestLoadEmotionsYAML(t *testing.T) {
	path := writeFile(t, "emotions.yaml", `
words:
  - word: happy
    tags: [joy, positive, anticipation, trust]
  - word: sad
    tags: [sadness, negative]
`)
	entries, err := LoadEmotionsYAML(path)
	if err != nil {
		t.Fatalf("LoadEmotionsYAML: %v", err)
	}
	happy := entries["happy"]
	want := EmotionVector{Joy: 1, Positive: 1, Anticipation: 1, Trust: 1}
	if happy != want {
		t.Errorf("happy = %+v, want %+v", happy, want)
	}
}

func TestLoadEmotionsYAMLRejectsUnknownTag(t *testing.T) {
	path := writeFile(t, "emotions.yaml", `
words:
  - word: happy
    tags: [bliss]
`)
	if _, err := LoadEmotionsYAML(path); !errors.Is(err, internalerr.ErrInvalidLexicon) {
		t.Errorf("expected ErrInvalidLexicon, got %v", err)
	}
}
