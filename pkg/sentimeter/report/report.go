// Package report summarizes finished analyses for downstream scripts.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/sentimeter/pkg/sentimeter/aggregate"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
)

// Builder constructs analysis reports with monotonic ULID identifiers.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is a compact numeric summary of one analysis pass.
type Report struct {
	ID          string
	GeneratedAt time.Time

	Sentences    int
	MeanScore    float64
	BinnedScores []float64

	EmotionTotals lexicon.EmotionVector

	Known   int
	Unknown int
}

// Input carries the raw analysis outputs a report is built from.
type Input struct {
	Scores   []int
	Emotions []lexicon.EmotionVector
	Known    int
	Unknown  int
	Bins     int // bin size for BinnedScores; <= 0 uses the default
}

// Build summarizes an analysis pass.
func (b *Builder) Build(in Input) Report {
	r := Report{
		ID:          ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		Sentences:   len(in.Scores),
		Known:       in.Known,
		Unknown:     in.Unknown,
	}

	if len(in.Scores) > 0 {
		sum := 0
		for _, s := range in.Scores {
			sum += s
		}
		r.MeanScore = float64(sum) / float64(len(in.Scores))
		r.BinnedScores = aggregate.Averaged(in.Scores, in.Bins)
	}

	for _, v := range in.Emotions {
		r.EmotionTotals = r.EmotionTotals.Add(v)
	}

	return r
}
