package models

// Review type filters accepted by the due-set selector.
const (
	ReviewTypeAll       = "all"
	ReviewTypeNew       = "new"
	ReviewTypeLearning  = "learning"
	ReviewTypeReview    = "review"
	ReviewTypeDifficult = "difficult"
)

// ValidReviewType reports whether s is a recognized review type filter.
func ValidReviewType(s string) bool {
	switch s {
	case ReviewTypeAll, ReviewTypeNew, ReviewTypeLearning, ReviewTypeReview, ReviewTypeDifficult:
		return true
	}
	return false
}

// DueWord is a word record selected for review, with its ranking score.
// Priority is a heuristic urgency weight, not a probability.
type DueWord struct {
	WordRecord
	Priority float64 `json:"priority"`
}
