package sentiment

import "fmt"

type LabelStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary holds batch statistics. Percentages are in [0, 100] and left
// unrounded; rounding is a display concern.
type Summary struct {
	Total               int        `json:"total"`
	Positive            LabelStats `json:"positive"`
	Negative            LabelStats `json:"negative"`
	Neutral             LabelStats `json:"neutral"`
	AveragePolarity     float64    `json:"average_polarity"`
	AverageSubjectivity float64    `json:"average_subjectivity"`
}

// Stats returns the statistics for label.
func (s Summary) Stats(label Label) LabelStats {
	switch label {
	case LabelPositive:
		return s.Positive
	case LabelNegative:
		return s.Negative
	default:
		return s.Neutral
	}
}

// Summarize tallies records in a single pass. With no records it returns the
// zero Summary and ErrEmptyBatch instead of dividing by zero. A record with an
// unknown label fails the whole batch with ErrInvalidRecord.
func Summarize(records []AnalysisRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrEmptyBatch
	}

	var s Summary
	var polaritySum, subjectivitySum float64
	for i, r := range records {
		switch r.Label {
		case LabelPositive:
			s.Positive.Count++
		case LabelNegative:
			s.Negative.Count++
		case LabelNeutral:
			s.Neutral.Count++
		default:
			return Summary{}, fmt.Errorf("%w: record %d has unknown label %q", ErrInvalidRecord, i, r.Label)
		}
		polaritySum += r.Polarity
		subjectivitySum += r.Subjectivity
	}

	s.Total = len(records)
	total := float64(s.Total)
	s.Positive.Percentage = percentage(s.Positive.Count, total)
	s.Negative.Percentage = percentage(s.Negative.Count, total)
	s.Neutral.Percentage = percentage(s.Neutral.Count, total)
	s.AveragePolarity = polaritySum / total
	s.AverageSubjectivity = subjectivitySum / total

	return s, nil
}

func percentage(count int, total float64) float64 {
	return float64(count) * 100 / total
}
