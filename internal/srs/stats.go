package srs

import (
	"sort"
	"time"

	"github.com/mlopes/wordflash/internal/models"
)

// AggregateOptions tunes the statistics computation.
type AggregateOptions struct {
	// TreatMissingAsNew counts records without a difficulty tier as new.
	// When false, such records only contribute to the total.
	TreatMissingAsNew bool
}

// Aggregate computes summary statistics over the full collection.
//
// The overdue boundary is inclusive (nextReview <= now), matching the
// selector's due test at the exact instant. Records without a NextReview
// date count as overdue, consistent with being always due.
func Aggregate(collection models.Collection, now time.Time, opts AggregateOptions) models.StudyStats {
	var stats models.StudyStats
	reviewDays := map[string]bool{}

	for _, words := range collection {
		for _, rec := range words {
			stats.TotalWords++

			switch rec.Difficulty {
			case models.DifficultyNew:
				stats.NewWords++
			case models.DifficultyLearning:
				stats.LearningWords++
			case models.DifficultyMastered:
				stats.MasteredWords++
			default:
				if opts.TreatMissingAsNew {
					stats.NewWords++
				}
			}

			if rec.NextReview == nil || !rec.NextReview.After(now) {
				stats.OverdueWords++
			}

			if rec.LastReviewed != nil {
				day := rec.LastReviewed.Format(time.DateOnly)
				reviewDays[day] = true
				if day == now.Format(time.DateOnly) {
					stats.TodayReviews++
				}
			}
		}
	}

	stats.CurrentStreak = streak(reviewDays, now)
	return stats
}

// streak counts consecutive calendar days with at least one review, ending
// today. If today has no review the streak is zero.
func streak(reviewDays map[string]bool, now time.Time) int {
	if len(reviewDays) == 0 {
		return 0
	}
	days := make([]string, 0, len(reviewDays))
	for d := range reviewDays {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	n := 0
	cursor := now
	for _, day := range days {
		if day != cursor.Format(time.DateOnly) {
			break
		}
		n++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return n
}
