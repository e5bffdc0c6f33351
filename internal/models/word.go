package models

import "time"

// Difficulty tiers for a word, derived from review history.
const (
	DifficultyNew      = "new"
	DifficultyLearning = "learning"
	DifficultyMastered = "mastered"
)

// Ease factor and interval bounds for the scheduling algorithm.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
	DefaultEaseFactor = 2.5
	MinIntervalDays   = 1
	MaxIntervalDays   = 365
)

// WordRecord is one learned word with its scheduling state. Records are
// mutated only through the review algorithm; everything else reads them.
type WordRecord struct {
	Word        string `json:"word"`
	Category    string `json:"category"`
	Explanation string `json:"explanation,omitempty"`

	Difficulty  string  `json:"difficulty"`
	EaseFactor  float64 `json:"easeFactor"`
	Interval    int     `json:"interval"`
	ReviewCount int     `json:"reviewCount"`

	// LastReviewed is nil until the first review. NextReview is nil for
	// legacy/imported records, which makes them immediately due.
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`

	// Exponentially smoothed running stats, informational only.
	AverageResponseTime int     `json:"averageResponseTime,omitempty"`
	ConfidenceScore     float64 `json:"confidenceScore,omitempty"`
}

// NewWordRecord creates a record with new-word defaults. NextReview is set
// to now so a freshly added word is immediately reviewable.
func NewWordRecord(word, category, explanation string, now time.Time) WordRecord {
	return WordRecord{
		Word:        word,
		Category:    category,
		Explanation: explanation,
		Difficulty:  DifficultyNew,
		EaseFactor:  DefaultEaseFactor,
		Interval:    MinIntervalDays,
		NextReview:  &now,
	}
}

// ReviewOutcome is the result of a single user-facing review interaction.
// Defaults (response time 5000ms, confidence 0.5) are applied at the API
// boundary; ConfidenceLevel must already be clamped to [0,1] by the caller.
type ReviewOutcome struct {
	IsCorrect       bool    `json:"isCorrect"`
	ResponseTimeMs  int     `json:"responseTimeMs"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
}

// Collection maps a category name to its word records. Categories are
// disjoint partitions of the learner's vocabulary.
type Collection map[string][]WordRecord

// TotalWords counts records across all categories.
func (c Collection) TotalWords() int {
	n := 0
	for _, words := range c {
		n += len(words)
	}
	return n
}

// Find returns the index of a word within its category, or -1.
func (c Collection) Find(category, word string) int {
	for i, rec := range c[category] {
		if rec.Word == word {
			return i
		}
	}
	return -1
}
