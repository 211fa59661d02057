package srs

import "fmt"

// Quality is a review rating on the SM-2 0-5 scale.
type Quality int

// Quality ratings, from no recall at all to perfect recall.
const (
	QualityBlackout          Quality = 0 // no recall
	QualityIncorrect         Quality = 1 // wrong, but the answer was recognised
	QualityIncorrectEasy     Quality = 2 // wrong, but the answer felt easy once shown
	QualityCorrectDifficult  Quality = 3 // right, with serious difficulty
	QualityCorrectHesitation Quality = 4 // right, after hesitation
	QualityPerfect           Quality = 5 // right, immediately
)

// ClampQuality forces an arbitrary rating into the 0-5 range.
func ClampQuality(q int) Quality {
	switch {
	case q < int(QualityBlackout):
		return QualityBlackout
	case q > int(QualityPerfect):
		return QualityPerfect
	default:
		return Quality(q)
	}
}

// IsSuccessful reports whether the rating counts as successful recall
// under the standard SM-2 threshold.
func (q Quality) IsSuccessful() bool {
	return q >= QualityCorrectDifficult
}

// String returns the label shown to learners for the rating.
func (q Quality) String() string {
	switch q {
	case QualityBlackout:
		return "Forgot"
	case QualityIncorrect:
		return "Wrong"
	case QualityIncorrectEasy:
		return "Almost"
	case QualityCorrectDifficult:
		return "Hard"
	case QualityCorrectHesitation:
		return "Good"
	case QualityPerfect:
		return "Easy"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}
