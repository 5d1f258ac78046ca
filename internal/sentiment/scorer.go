package sentiment

// LexicalScore is the baseline reading of a text from a lexical model.
type LexicalScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// LexicalScorer is the external lexical model. Implementations return an error
// wrapping ErrLexicalScoreUnavailable when they cannot score a text.
type LexicalScorer interface {
	Score(text string) (LexicalScore, error)
}

// ScorerFunc adapts a plain function to LexicalScorer.
type ScorerFunc func(text string) (LexicalScore, error)

func (f ScorerFunc) Score(text string) (LexicalScore, error) {
	return f(text)
}
