package sentiment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the result of analyzing a single text. Records are passed
// by value and never modified once built.
type AnalysisRecord struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	Polarity     float64   `json:"polarity"`
	RawPolarity  float64   `json:"raw_polarity"`
	Subjectivity float64   `json:"subjectivity"`
	Label        Label     `json:"label"`
	Line         int       `json:"line,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewRecord assembles a record and checks that every value is in range and
// that label agrees with the polarity under thresholds.
func NewRecord(text string, score LexicalScore, polarity float64, label Label, thresholds Thresholds, now time.Time) (AnalysisRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return AnalysisRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidInput)
	}
	if !inRange(polarity, -1, 1) {
		return AnalysisRecord{}, fmt.Errorf("%w: polarity %v outside [-1, 1]", ErrInvalidRecord, polarity)
	}
	if !inRange(score.Subjectivity, 0, 1) {
		return AnalysisRecord{}, fmt.Errorf("%w: subjectivity %v outside [0, 1]", ErrInvalidRecord, score.Subjectivity)
	}
	if expected := thresholds.Classify(polarity); label != expected {
		return AnalysisRecord{}, fmt.Errorf("%w: label %s does not match polarity %v (want %s)",
			ErrInvalidRecord, label, polarity, expected)
	}

	return AnalysisRecord{
		ID:           uuid.New(),
		Text:         text,
		Polarity:     polarity,
		RawPolarity:  score.Polarity,
		Subjectivity: score.Subjectivity,
		Label:        label,
		Timestamp:    now,
	}, nil
}

// PolarityDescription is the human-readable intensity of a polarity.
func (r AnalysisRecord) PolarityDescription() string {
	return PolarityDescription(r.Polarity)
}

func (r AnalysisRecord) SubjectivityDescription() string {
	return SubjectivityDescription(r.Subjectivity)
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
