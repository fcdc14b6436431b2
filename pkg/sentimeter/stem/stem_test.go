package stem

import "testing"

func TestIdentity(t *testing.T) {
	var s Stemmer = Identity{}
	for _, w := range []string{"happy", "running", ""} {
		if got := s.Stem(w); got != w {
			t.Errorf("Identity.Stem(%q) = %q, want unchanged", w, got)
		}
	}
}

func TestAdapterNoCandidates(t *testing.T) {
	a := NewAdapter(func(string) []string { return nil })
	if got := a.Stem("happy"); got != "happy" {
		t.Errorf("Stem with no candidates = %q, want %q", got, "happy")
	}
}

func TestAdapterSingleCandidate(t *testing.T) {
	a := NewAdapter(func(string) []string { return []string{"happi"} })
	if got := a.Stem("happy"); got != "happi" {
		t.Errorf("Stem = %q, want %q", got, "happi")
	}
}

func TestAdapterTieBreakLexicographic(t *testing.T) {
	// Multi-candidate backends resolve to the smallest candidate,
	// regardless of the order the backend reports them in.
	a := NewAdapter(func(string) []string { return []string{"runs", "ran", "run"} })
	if got := a.Stem("running"); got != "ran" {
		t.Errorf("Stem = %q, want %q", got, "ran")
	}
}

func TestNewEnglish(t *testing.T) {
	s, err := NewEnglish()
	if err != nil {
		t.Fatalf("NewEnglish() error: %v", err)
	}

	cases := map[string]string{
		"jumping": "jump",
		"cats":    "cat",
		"loved":   "love",
	}
	for word, want := range cases {
		if got := s.Stem(word); got != want {
			t.Errorf("Stem(%q) = %q, want %q", word, got, want)
		}
	}
}
