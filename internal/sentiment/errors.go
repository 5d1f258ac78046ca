package sentiment

import "errors"

var (
	// ErrInvalidInput is returned for text that is empty once trimmed.
	ErrInvalidInput = errors.New("text must not be empty")

	// ErrLexicalScoreUnavailable wraps any failure of the underlying LexicalScorer.
	ErrLexicalScoreUnavailable = errors.New("lexical score unavailable")

	// ErrEmptyBatch is returned by Summarize when there is nothing to summarize.
	// It is a condition, not a failure: the returned Summary is the zero value.
	ErrEmptyBatch = errors.New("empty batch")

	ErrInvalidRecord  = errors.New("invalid analysis record")
	ErrInvalidLexicon = errors.New("invalid keyword lexicon")
)
