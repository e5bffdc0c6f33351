package srs

import "github.com/mlopes/wordflash/internal/models"

// Normalize fills new-word defaults into a record with missing scheduling
// fields, so that legacy/imported data goes through the same math as records
// created here. A nil NextReview is preserved: the selector treats it as
// immediately due.
func Normalize(rec models.WordRecord) models.WordRecord {
	if rec.EaseFactor <= 0 {
		rec.EaseFactor = models.DefaultEaseFactor
	}
	if rec.Interval < models.MinIntervalDays {
		rec.Interval = models.MinIntervalDays
	}
	if rec.Difficulty == "" {
		rec.Difficulty = models.DifficultyNew
	}
	return rec
}
