package sentiment

// Thresholds bound the neutral dead zone. Polarity strictly above Positive is
// POSITIVE, strictly below Negative is NEGATIVE, anything in between NEUTRAL.
type Thresholds struct {
	Positive float64
	Negative float64
}

// A ±0.1 zone sent most short texts to NEUTRAL, so keep these at ±0.05.
var defaultThresholds = Thresholds{
	Positive: 0.05,
	Negative: -0.05,
}

// DefaultThresholds returns the tuned classification cut-offs.
func DefaultThresholds() Thresholds {
	return defaultThresholds
}

func (t Thresholds) Classify(polarity float64) Label {
	if polarity > t.Positive {
		return LabelPositive
	} else if polarity < t.Negative {
		return LabelNegative
	}
	return LabelNeutral
}

// Classify maps an adjusted polarity to a label using DefaultThresholds.
func Classify(polarity float64) Label {
	return defaultThresholds.Classify(polarity)
}
