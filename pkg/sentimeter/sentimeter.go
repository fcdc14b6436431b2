// Package sentimeter scores English text against static sentiment
// lexicons. An Analyzer splits its input into sentences, tokenizes each
// sentence, and aggregates per-word lexicon lookups into a polarity
// score series and an emotion vector series, tracking how many tokens
// the active lexicon recognized along the way.
package sentimeter

import (
	"github.com/cognicore/sentimeter/pkg/sentimeter/document"
	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
	"github.com/cognicore/sentimeter/pkg/sentimeter/report"
	"github.com/cognicore/sentimeter/pkg/sentimeter/split"
	"github.com/cognicore/sentimeter/pkg/sentimeter/stem"
	"github.com/cognicore/sentimeter/pkg/sentimeter/tokenize"
)

// Options configures an Analyzer.
type Options struct {
	// Text is the raw input. It takes precedence over Path when both
	// are set; with neither, analyses run over zero sentences.
	Text string

	// Path points at a text or HTML file. Existence is checked at
	// construction time.
	Path string

	// Store is the lexicon to score against. Required.
	Store lexicon.Store

	// Stemming canonicalizes tokens with the snowball stemmer before
	// lookup. The stemmer is constructed lazily on first use.
	Stemming bool

	// Splitter overrides sentence-boundary detection. Defaults to
	// split.Simple.
	Splitter split.Splitter
}

// Analyzer runs lexicon-based analyses over one input. It is not safe
// for concurrent use; run independent Analyzers over a shared Store
// instead.
type Analyzer struct {
	doc      document.Document
	store    lexicon.Store
	splitter split.Splitter

	stemming bool
	stemmer  stem.Stemmer // built lazily when stemming is enabled

	// Sentence splitting is computed once per Analyzer and kept for
	// its whole lifetime.
	sentences []string
	splitDone bool

	scores    []int
	nrcScores []lexicon.EmotionVector
	fam       Familiarity
}

// New creates an Analyzer. A missing input file fails immediately with
// internalerr.ErrFileNotFound.
func New(opts Options) (*Analyzer, error) {
	if opts.Store == nil {
		return nil, internalerr.ErrNoLexicon
	}

	var doc document.Document
	switch {
	case opts.Text != "":
		doc = document.FromText(opts.Text)
	case opts.Path != "":
		var err error
		doc, err = document.FromFile(opts.Path)
		if err != nil {
			return nil, err
		}
	}

	splitter := opts.Splitter
	if splitter == nil {
		splitter = split.NewSimple()
	}

	return &Analyzer{
		doc:      doc,
		store:    opts.Store,
		splitter: splitter,
		stemming: opts.Stemming,
	}, nil
}

// Sentences returns the input's sentences in source order, verbatim.
// The split is computed on first use and cached for the Analyzer's
// lifetime.
func (a *Analyzer) Sentences() ([]string, error) {
	if a.splitDone {
		return a.sentences, nil
	}

	sentences, err := a.splitter.Split(a.doc.Text())
	if err != nil {
		return nil, err
	}

	a.sentences = sentences
	a.splitDone = true
	return a.sentences, nil
}

// stemmerFor returns the active stemmer, constructing the snowball
// backend on first use when stemming is enabled.
func (a *Analyzer) stemmerFor() (stem.Stemmer, error) {
	if !a.stemming {
		return stem.Identity{}, nil
	}
	if a.stemmer == nil {
		s, err := stem.NewEnglish()
		if err != nil {
			return nil, err
		}
		a.stemmer = s
	}
	return a.stemmer, nil
}

// Analyze scores every sentence against the polarity lexicon. Each
// token contributes +1 when positive, -1 when negative and 0 when the
// lexicon does not know it; the per-sentence sum is the sentence score.
// The returned series is index-aligned with Sentences. Familiarity
// counters are reset at the start of the call and reflect this pass
// only.
func (a *Analyzer) Analyze() ([]int, Familiarity, error) {
	sentences, err := a.Sentences()
	if err != nil {
		return nil, Familiarity{}, err
	}
	stemmer, err := a.stemmerFor()
	if err != nil {
		return nil, Familiarity{}, err
	}

	var fam Familiarity
	scores := make([]int, 0, len(sentences))

	for _, sentence := range sentences {
		sum := 0
		for _, token := range tokenize.Words(sentence) {
			word := stemmer.Stem(token)
			if p, ok := a.store.PolarityOf(word); ok {
				fam.Known++
				sum += p.Score()
			} else {
				fam.Unknown++
			}
		}
		scores = append(scores, sum)
	}

	a.scores = scores
	a.fam = fam
	return scores, fam, nil
}

// NRCAnalyze scores every sentence against the emotion lexicon,
// summing the emotion vectors of recognized tokens element-wise. A
// sentence with no emotion-lexicon words yields the canonical null
// vector. The returned series is index-aligned with Sentences.
// Familiarity counters are reset at the start of the call.
func (a *Analyzer) NRCAnalyze() ([]lexicon.EmotionVector, Familiarity, error) {
	sentences, err := a.Sentences()
	if err != nil {
		return nil, Familiarity{}, err
	}
	stemmer, err := a.stemmerFor()
	if err != nil {
		return nil, Familiarity{}, err
	}

	var fam Familiarity
	vectors := make([]lexicon.EmotionVector, 0, len(sentences))

	for _, sentence := range sentences {
		var acc lexicon.EmotionVector
		hits := 0
		for _, token := range tokenize.Words(sentence) {
			word := stemmer.Stem(token)
			if v, ok := a.store.EmotionsOf(word); ok {
				fam.Known++
				acc = acc.Add(v)
				hits++
			} else {
				fam.Unknown++
			}
		}
		if hits == 0 {
			// No emotion words found: emit the null vector rather
			// than an accumulated one.
			vectors = append(vectors, lexicon.EmotionVector{})
			continue
		}
		vectors = append(vectors, acc)
	}

	a.nrcScores = vectors
	a.fam = fam
	return vectors, fam, nil
}

// WordScore looks up one word's polarity contribution: +1, -1, or
// ok=false when the polarity lexicon does not know the word. The word
// is stemmed first when stemming is enabled.
func (a *Analyzer) WordScore(word string) (int, bool, error) {
	stemmer, err := a.stemmerFor()
	if err != nil {
		return 0, false, err
	}
	p, ok := a.store.PolarityOf(stemmer.Stem(word))
	if !ok {
		return 0, false, nil
	}
	return p.Score(), true, nil
}

// WordEmotions looks up one word's emotion vector. Unlike NRCAnalyze,
// absence stays absent: ok=false, no null-vector substitution.
func (a *Analyzer) WordEmotions(word string) (lexicon.EmotionVector, bool, error) {
	stemmer, err := a.stemmerFor()
	if err != nil {
		return lexicon.EmotionVector{}, false, err
	}
	v, ok := a.store.EmotionsOf(stemmer.Stem(word))
	return v, ok, nil
}

// SentenceScores returns the per-token polarity breakdown of one
// sentence, with 0 for tokens the lexicon does not know. This is the
// positional breakdown, not the per-sentence sum Analyze computes.
func (a *Analyzer) SentenceScores(sentence string) ([]int, error) {
	tokens := tokenize.Words(sentence)
	scores := make([]int, len(tokens))
	for i, token := range tokens {
		score, _, err := a.WordScore(token)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}

// SentenceEmotions maps each distinct token of a sentence to its
// emotion vector, nil for tokens the lexicon does not know. Map keys
// are the raw tokens, never stemmed; repeated tokens collapse to one
// entry.
func (a *Analyzer) SentenceEmotions(sentence string) (map[string]*lexicon.EmotionVector, error) {
	out := make(map[string]*lexicon.EmotionVector)
	for _, token := range tokenize.Words(sentence) {
		v, ok, err := a.WordEmotions(token)
		if err != nil {
			return nil, err
		}
		if !ok {
			out[token] = nil
			continue
		}
		vec := v
		out[token] = &vec
	}
	return out, nil
}

// Scores returns the polarity series from the most recent Analyze call.
func (a *Analyzer) Scores() []int { return a.scores }

// NRCScores returns the emotion series from the most recent NRCAnalyze
// call.
func (a *Analyzer) NRCScores() []lexicon.EmotionVector { return a.nrcScores }

// Familiarity returns the known/unknown counters from the most recent
// analysis pass.
func (a *Analyzer) Familiarity() Familiarity { return a.fam }

// Ratio is shorthand for Familiarity().Ratio.
func (a *Analyzer) Ratio(useUnknown bool) (float64, error) {
	return a.fam.Ratio(useUnknown)
}

// Report runs both analyses and summarizes them. bins <= 0 uses the
// default bin size.
func (a *Analyzer) Report(bins int) (report.Report, error) {
	scores, fam, err := a.Analyze()
	if err != nil {
		return report.Report{}, err
	}
	emotions, _, err := a.NRCAnalyze()
	if err != nil {
		return report.Report{}, err
	}

	return report.New().Build(report.Input{
		Scores:   scores,
		Emotions: emotions,
		Known:    fam.Known,
		Unknown:  fam.Unknown,
		Bins:     bins,
	}), nil
}
