package sentiment

import "math"

func PolarityDescription(polarity float64) string {
	var intensity string
	switch abs := math.Abs(polarity); {
	case abs >= 0.7:
		intensity = "Very"
	case abs >= 0.3:
		intensity = "Moderately"
	case abs >= 0.05:
		intensity = "Slightly"
	default:
		return "Neutral"
	}

	if polarity > 0 {
		return intensity + " positive"
	}
	return intensity + " negative"
}

func SubjectivityDescription(subjectivity float64) string {
	switch {
	case subjectivity >= 0.7:
		return "Very subjective"
	case subjectivity >= 0.4:
		return "Moderately subjective"
	case subjectivity >= 0.1:
		return "Slightly subjective"
	default:
		return "Objective"
	}
}
