package sentiment

type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// Labels lists every label in display order.
var Labels = []Label{LabelPositive, LabelNegative, LabelNeutral}

func (l Label) String() string {
	return string(l)
}

func (l Label) Valid() bool {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	default:
		return false
	}
}
