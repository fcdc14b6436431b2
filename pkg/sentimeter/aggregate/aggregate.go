// Package aggregate downsamples score sequences for trend inspection.
package aggregate

// DefaultBins is the chunk size used when the caller passes bins <= 0.
const DefaultBins = 10

// Number covers the score types produced by analyses.
type Number interface {
	~int | ~int64 | ~float64
}

// Averaged partitions scores into consecutive chunks of size bins (the
// final chunk keeps the remainder) and returns the arithmetic mean of
// each chunk in order. bins <= 0 falls back to DefaultBins. The output
// has ceil(len(scores)/bins) elements.
func Averaged[T Number](scores []T, bins int) []float64 {
	if bins <= 0 {
		bins = DefaultBins
	}

	if len(scores) == 0 {
		return nil
	}

	out := make([]float64, 0, (len(scores)+bins-1)/bins)
	for start := 0; start < len(scores); start += bins {
		end := start + bins
		if end > len(scores) {
			end = len(scores)
		}

		var sum float64
		for _, s := range scores[start:end] {
			sum += float64(s)
		}
		out = append(out, sum/float64(end-start))
	}

	return out
}
