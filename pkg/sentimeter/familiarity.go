package sentimeter

import "github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"

// Familiarity counts how many tokens the active lexicon recognized
// during one analysis pass. Counters are reset at the start of each
// pass; re-running the same analysis over unchanged input reproduces
// the same counts.
type Familiarity struct {
	Known   int
	Unknown int
}

// Ratio returns the share of known tokens, or of unknown tokens when
// useUnknown is set. Before any token has been observed the ratio is
// undefined and fails with internalerr.ErrNoObservations rather than
// defaulting to zero.
func (f Familiarity) Ratio(useUnknown bool) (float64, error) {
	total := f.Known + f.Unknown
	if total == 0 {
		return 0, internalerr.ErrNoObservations
	}

	numerator := f.Known
	if useUnknown {
		numerator = f.Unknown
	}
	return float64(numerator) / float64(total), nil
}
