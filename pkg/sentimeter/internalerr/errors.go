package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrFileNotFound       = errors.New("file not found")
	ErrStemmerUnavailable = errors.New("stemmer unavailable")
	ErrNoObservations     = errors.New("no tokens observed")
	ErrNoLexicon          = errors.New("no lexicon store configured")
	ErrInvalidLexicon     = errors.New("invalid lexicon entry")
	ErrInvalidConfig      = errors.New("invalid configuration")
)
