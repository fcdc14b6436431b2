package sqlex

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
)

func TestWriteOpenRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	polarity := map[string]lexicon.Polarity{
		"happy": {Positive: true},
		"sad":   {Negative: true},
	}
	emotions := map[string]lexicon.EmotionVector{
		"happy": {Joy: 1, Positive: 1, Anticipation: 1, Trust: 1},
		"hate":  {Anger: 1, Negative: 1, Disgust: 1},
	}

	if err := Write(ctx, path, polarity, emotions); err != nil {
		t.Fatalf("Write: %v", err)
	}

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if p, ok := store.PolarityOf("happy"); !ok || !p.Positive || p.Negative {
		t.Errorf("PolarityOf(happy) = %+v, %v", p, ok)
	}
	if p, ok := store.PolarityOf("sad"); !ok || !p.Negative {
		t.Errorf("PolarityOf(sad) = %+v, %v", p, ok)
	}
	if _, ok := store.PolarityOf("missing"); ok {
		t.Error("PolarityOf should miss for words not compiled in")
	}

	v, ok := store.EmotionsOf("happy")
	if !ok {
		t.Fatal("EmotionsOf(happy) missed")
	}
	want := lexicon.EmotionVector{Joy: 1, Positive: 1, Anticipation: 1, Trust: 1}
	if v != want {
		t.Errorf("EmotionsOf(happy) = %+v, want %+v", v, want)
	}
}

func TestWriteReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	first := map[string]lexicon.Polarity{"old": {Positive: true}}
	if err := Write(ctx, path, first, nil); err != nil {
		t.Fatalf("first Write: %v", err)
	}

	second := map[string]lexicon.Polarity{"new": {Negative: true}}
	if err := Write(ctx, path, second, nil); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.PolarityOf("old"); ok {
		t.Error("recompiling should drop previous entries")
	}
	if _, ok := store.PolarityOf("new"); !ok {
		t.Error("recompiled entry missing")
	}
}

func TestWriteRejectsInvalidPolarity(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	err := Write(ctx, path, map[string]lexicon.Polarity{"fine": {}}, nil)
	if !errors.Is(err, internalerr.ErrInvalidLexicon) {
		t.Errorf("expected ErrInvalidLexicon, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	ctx := context.Background()
	_, err := Open(ctx, filepath.Join(t.TempDir(), "nope.db"))
	if !errors.Is(err, internalerr.ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}
