package srs

import (
	"math"
	"time"

	"github.com/mlopes/wordflash/internal/models"
)

// Outcome defaults applied when the caller leaves a field unset.
const (
	DefaultResponseTimeMs  = 5000
	DefaultConfidenceLevel = 0.5
)

// Smoothing factor for the running response-time/confidence stats:
// 0.8 existing value, 0.2 new sample.
const smoothing = 0.8

// ApplyReview computes a word's next scheduling state after one review.
// It is pure: the input record is copied, never mutated.
//
// The algorithm is an ease-factor-modulated SM-2 variant: a correct answer
// grows the interval multiplicatively by the ease factor (with a fixed 1→6
// graduation step), an incorrect answer resets the interval to one day.
func ApplyReview(rec models.WordRecord, outcome models.ReviewOutcome, now time.Time) models.WordRecord {
	rec = Normalize(rec)
	prior := rec.Difficulty

	rec.ReviewCount++

	// Ease adjustment plus a confidence correction, clamped and rounded.
	ease := rec.EaseFactor
	if outcome.IsCorrect {
		ease += 0.1
	} else {
		ease -= 0.2
	}
	if outcome.ConfidenceLevel < 0.5 {
		ease -= 0.1
	} else if outcome.ConfidenceLevel > 0.8 {
		ease += 0.05
	}
	ease = round2(clamp(ease, models.MinEaseFactor, models.MaxEaseFactor))

	interval := 1
	if outcome.IsCorrect {
		if rec.Interval == 1 {
			interval = 6 // graduation step
		} else {
			interval = int(math.Round(float64(rec.Interval) * ease))
		}
	}
	if interval < models.MinIntervalDays {
		interval = models.MinIntervalDays
	}
	if interval > models.MaxIntervalDays {
		interval = models.MaxIntervalDays
	}

	// Tier transitions are evaluated against the pre-review tier, so a word
	// can never jump from new to mastered in a single update.
	switch prior {
	case models.DifficultyNew:
		if rec.ReviewCount >= 2 {
			rec.Difficulty = models.DifficultyLearning
		}
	case models.DifficultyLearning:
		if rec.ReviewCount >= 5 && ease >= 2.5 {
			rec.Difficulty = models.DifficultyMastered
		}
	case models.DifficultyMastered:
		if ease < 2.0 {
			rec.Difficulty = models.DifficultyLearning
		}
	}

	rec.EaseFactor = ease
	rec.Interval = interval
	reviewed := now
	next := now.AddDate(0, 0, interval)
	rec.LastReviewed = &reviewed
	rec.NextReview = &next

	// Running stats: smoothed, seeded from the first sample.
	if rec.AverageResponseTime == 0 {
		rec.AverageResponseTime = outcome.ResponseTimeMs
	} else {
		rec.AverageResponseTime = int(math.Round(float64(rec.AverageResponseTime)*smoothing + float64(outcome.ResponseTimeMs)*(1-smoothing)))
	}
	if rec.ConfidenceScore == 0 {
		rec.ConfidenceScore = round2(outcome.ConfidenceLevel)
	} else {
		rec.ConfidenceScore = round2(rec.ConfidenceScore*smoothing + outcome.ConfidenceLevel*(1-smoothing))
	}

	return rec
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
