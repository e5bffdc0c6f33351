package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/srs"
)

func timePtr(t time.Time) *time.Time { return &t }

func dueRecord(word, difficulty string, nextReview *time.Time) models.WordRecord {
	return models.WordRecord{
		Word:       word,
		Difficulty: difficulty,
		EaseFactor: 2.5,
		Interval:   1,
		NextReview: nextReview,
	}
}

func TestSelectDue_OverduePriority(t *testing.T) {
	now := time.Now()
	collection := models.Collection{
		"general": {
			dueRecord("apple", models.DifficultyNew, timePtr(now.Add(-72*time.Hour))),
		},
	}

	due := srs.SelectDue(collection, models.ReviewTypeAll, 20, now)

	require.Len(t, due, 1)
	assert.InDelta(t, 130.0, due[0].Priority, 1e-6, "3 overdue days * 10 + new bonus 100")
	assert.Equal(t, "general", due[0].Category)
}

func TestSelectDue_ExcludesFutureRecords(t *testing.T) {
	now := time.Now()
	collection := models.Collection{
		"general": {
			dueRecord("later", models.DifficultyNew, timePtr(now.Add(48*time.Hour))),
			dueRecord("now", models.DifficultyNew, timePtr(now.Add(-time.Hour))),
		},
	}

	due := srs.SelectDue(collection, models.ReviewTypeAll, 20, now)

	require.Len(t, due, 1)
	assert.Equal(t, "now", due[0].Word)
}

func TestSelectDue_LegacyRecordsAlwaysDue(t *testing.T) {
	now := time.Now()
	collection := models.Collection{
		"imported": {dueRecord("relic", models.DifficultyLearning, nil)},
	}

	due := srs.SelectDue(collection, models.ReviewTypeAll, 20, now)

	require.Len(t, due, 1)
	assert.Equal(t, "relic", due[0].Word)
	// Effectively zero overdue days: only the tier bonus remains.
	assert.InDelta(t, 50.0, due[0].Priority, 0.01)
}

func TestSelectDue_TypeFilters(t *testing.T) {
	now := time.Now()
	past := timePtr(now.Add(-time.Hour))
	hard := dueRecord("hard", models.DifficultyLearning, past)
	hard.EaseFactor = 1.5
	collection := models.Collection{
		"general": {
			dueRecord("fresh", models.DifficultyNew, past),
			dueRecord("ongoing", models.DifficultyLearning, past),
			dueRecord("done", models.DifficultyMastered, past),
			hard,
		},
	}

	tests := []struct {
		reviewType string
		words      []string
	}{
		{models.ReviewTypeNew, []string{"fresh"}},
		{models.ReviewTypeLearning, []string{"ongoing", "hard"}},
		{models.ReviewTypeReview, []string{"done"}},
		{models.ReviewTypeDifficult, []string{"hard"}},
		{models.ReviewTypeAll, []string{"fresh", "ongoing", "done", "hard"}},
	}

	for _, tt := range tests {
		t.Run(tt.reviewType, func(t *testing.T) {
			due := srs.SelectDue(collection, tt.reviewType, 20, now)
			got := make([]string, 0, len(due))
			for _, d := range due {
				got = append(got, d.Word)
			}
			assert.ElementsMatch(t, tt.words, got)
		})
	}
}

func TestSelectDue_DifficultExcludesMissingEase(t *testing.T) {
	now := time.Now()
	rec := models.WordRecord{Word: "blank", Difficulty: models.DifficultyNew}
	collection := models.Collection{"general": {rec}}

	due := srs.SelectDue(collection, models.ReviewTypeDifficult, 20, now)

	assert.Empty(t, due, "missing ease defaults to 2.5, above the difficult threshold")
}

func TestSelectDue_SortedByDescendingPriority(t *testing.T) {
	now := time.Now()
	collection := models.Collection{
		"a": {
			dueRecord("w1", models.DifficultyMastered, timePtr(now.Add(-24*time.Hour))),
			dueRecord("w2", models.DifficultyNew, timePtr(now.Add(-24*time.Hour))),
		},
		"b": {
			dueRecord("w3", models.DifficultyLearning, timePtr(now.Add(-240*time.Hour))),
			dueRecord("w4", models.DifficultyNew, timePtr(now)),
		},
	}

	due := srs.SelectDue(collection, models.ReviewTypeAll, 20, now)

	require.Len(t, due, 4)
	for i := 1; i < len(due); i++ {
		assert.GreaterOrEqual(t, due[i-1].Priority, due[i].Priority)
	}
}

func TestSelectDue_LimitTruncates(t *testing.T) {
	now := time.Now()
	var words []models.WordRecord
	for _, w := range []string{"a", "b", "c", "d", "e"} {
		words = append(words, dueRecord(w, models.DifficultyNew, timePtr(now.Add(-time.Hour))))
	}
	collection := models.Collection{"general": words}

	assert.Len(t, srs.SelectDue(collection, models.ReviewTypeAll, 3, now), 3)
	assert.Empty(t, srs.SelectDue(collection, models.ReviewTypeAll, 0, now))
	assert.Empty(t, srs.SelectDue(collection, models.ReviewTypeAll, -1, now))
}

func TestSelectDue_EmptyCollection(t *testing.T) {
	assert.Empty(t, srs.SelectDue(models.Collection{}, models.ReviewTypeAll, 20, time.Now()))
}

func TestSelectDue_DeterministicForFixedInput(t *testing.T) {
	now := time.Now()
	past := timePtr(now.Add(-time.Hour))
	collection := models.Collection{
		"b": {dueRecord("beta", models.DifficultyNew, past)},
		"a": {dueRecord("alpha", models.DifficultyNew, past)},
	}

	first := srs.SelectDue(collection, models.ReviewTypeAll, 20, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, srs.SelectDue(collection, models.ReviewTypeAll, 20, now))
	}
}
