package srs

import (
	"sort"
	"time"

	"github.com/mlopes/wordflash/internal/models"
)

// DefaultDueLimit bounds a due-set when the caller does not say otherwise.
const DefaultDueLimit = 20

// Priority weights: overdue days dominate, tier bonus favors unseen words,
// struggling words (low ease) get a flat boost.
const (
	overdueWeight  = 10.0
	newBonus       = 100.0
	learningBonus  = 50.0
	masteredBonus  = 10.0
	difficultBonus = 25.0
	difficultEase  = 2.0
)

// SelectDue scans the collection and returns the due records matching
// reviewType, ranked by descending priority and truncated to limit.
//
// A record without a NextReview date is always due: words with no scheduling
// data (legacy or imported) must never be silently excluded. A limit of zero
// or less yields an empty result.
func SelectDue(collection models.Collection, reviewType string, limit int, now time.Time) []models.DueWord {
	if limit <= 0 {
		return nil
	}
	if reviewType == "" {
		reviewType = models.ReviewTypeAll
	}

	// Categories in sorted order so ranking is deterministic for a fixed input.
	categories := make([]string, 0, len(collection))
	for cat := range collection {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var due []models.DueWord
	for _, cat := range categories {
		for _, rec := range collection[cat] {
			rec = Normalize(rec)
			rec.Category = cat
			if rec.NextReview != nil && now.Before(*rec.NextReview) {
				continue
			}
			if !matchesType(rec, reviewType) {
				continue
			}
			due = append(due, models.DueWord{
				WordRecord: rec,
				Priority:   priority(rec, now),
			})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Priority > due[j].Priority
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

func matchesType(rec models.WordRecord, reviewType string) bool {
	switch reviewType {
	case models.ReviewTypeNew:
		return rec.Difficulty == models.DifficultyNew
	case models.ReviewTypeLearning:
		return rec.Difficulty == models.DifficultyLearning
	case models.ReviewTypeReview:
		return rec.Difficulty == models.DifficultyMastered
	case models.ReviewTypeDifficult:
		return rec.EaseFactor < difficultEase
	default:
		return true
	}
}

func priority(rec models.WordRecord, now time.Time) float64 {
	// Records without a date count as overdue from one second before now,
	// which is effectively zero overdue days but still due.
	next := now.Add(-time.Second)
	if rec.NextReview != nil {
		next = *rec.NextReview
	}
	overdueDays := now.Sub(next).Hours() / 24
	if overdueDays < 0 {
		overdueDays = 0
	}

	p := overdueDays * overdueWeight
	switch rec.Difficulty {
	case models.DifficultyNew:
		p += newBonus
	case models.DifficultyLearning:
		p += learningBonus
	case models.DifficultyMastered:
		p += masteredBonus
	}
	if rec.EaseFactor < difficultEase {
		p += difficultBonus
	}
	return p
}
