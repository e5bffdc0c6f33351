package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mlopes/wordflash/internal/errors"
	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/services"
	"github.com/mlopes/wordflash/internal/store"
	"github.com/mlopes/wordflash/internal/testutil/mocks"
)

func seededStore(t *testing.T, collection models.Collection) store.Store {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), collection))
	return st
}

func TestProcessReview_UpdatesAndPersists(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t, models.Collection{
		"general": {
			{Word: "ephemeral", Category: "general", Difficulty: models.DifficultyNew, EaseFactor: 2.5, Interval: 1},
		},
	})
	svc := services.NewSchedulerService(st, true)

	outcome := models.ReviewOutcome{IsCorrect: true, ResponseTimeMs: 4000, ConfidenceLevel: 0.5}
	updated, err := svc.ProcessReview(ctx, "general", "ephemeral", outcome)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 6, updated.Interval)
	assert.Equal(t, 1, updated.ReviewCount)

	// The mutated record must be what the store now holds.
	persisted, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted["general"], 1)
	assert.Equal(t, *updated, persisted["general"][0])
}

func TestProcessReview_UnknownWord(t *testing.T) {
	svc := services.NewSchedulerService(store.NewMemoryStore(), true)

	_, err := svc.ProcessReview(context.Background(), "general", "missing", models.ReviewOutcome{IsCorrect: true})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestProcessReview_DefaultsResponseTime(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t, models.Collection{
		"general": {{Word: "w", Category: "general", Difficulty: models.DifficultyNew, EaseFactor: 2.5, Interval: 1}},
	})
	svc := services.NewSchedulerService(st, true)

	updated, err := svc.ProcessReview(ctx, "general", "w", models.ReviewOutcome{IsCorrect: true, ConfidenceLevel: 0.5})

	require.NoError(t, err)
	assert.Equal(t, 5000, updated.AverageResponseTime, "omitted response time falls back to the default sample")
}

func TestProcessReview_StoreLoadFailurePropagates(t *testing.T) {
	st := new(mocks.MockStore)
	st.On("Load", mock.Anything).Return(nil, assert.AnError)
	svc := services.NewSchedulerService(st, true)

	_, err := svc.ProcessReview(context.Background(), "general", "w", models.ReviewOutcome{IsCorrect: true})

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
	st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetDue_RejectsUnknownType(t *testing.T) {
	svc := services.NewSchedulerService(store.NewMemoryStore(), true)

	_, err := svc.GetDue(context.Background(), "bogus", 20)

	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestGetDue_EmptyTypeMeansAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	past := now.Add(-time.Hour)
	st := seededStore(t, models.Collection{
		"general": {
			{Word: "a", Difficulty: models.DifficultyNew, EaseFactor: 2.5, Interval: 1, NextReview: &past},
			{Word: "b", Difficulty: models.DifficultyMastered, EaseFactor: 2.5, Interval: 30, NextReview: &past},
		},
	})
	svc := services.NewSchedulerService(st, true)

	due, err := svc.GetDue(ctx, "", 20)

	require.NoError(t, err)
	assert.Len(t, due, 2)
}

func TestGetStats_EmptyCollection(t *testing.T) {
	svc := services.NewSchedulerService(store.NewMemoryStore(), true)

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.StudyStats{}, stats)
}

func TestAddWord_CreatesImmediatelyReviewable(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := services.NewSchedulerService(st, true)

	rec, err := svc.AddWord(ctx, "  Serendipity ", "general", "a happy accident")

	require.NoError(t, err)
	assert.Equal(t, "serendipity", rec.Word, "words are stored as lowercase base forms")
	assert.Equal(t, models.DifficultyNew, rec.Difficulty)
	assert.InDelta(t, 2.5, rec.EaseFactor, 1e-9)
	assert.Equal(t, 1, rec.Interval)
	require.NotNil(t, rec.NextReview)

	due, err := svc.GetDue(ctx, models.ReviewTypeAll, 20)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "serendipity", due[0].Word)
}

func TestAddWord_RejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSchedulerService(store.NewMemoryStore(), true)

	_, err := svc.AddWord(ctx, "echo", "general", "")
	require.NoError(t, err)

	_, err = svc.AddWord(ctx, "echo", "general", "")
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeConflict, appErr.Code)
}

func TestDeleteWord_RemovesRecordAndEmptyCategory(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t, models.Collection{
		"general": {{Word: "w", Category: "general", Difficulty: models.DifficultyNew, EaseFactor: 2.5, Interval: 1}},
	})
	svc := services.NewSchedulerService(st, true)

	require.NoError(t, svc.DeleteWord(ctx, "general", "w"))

	collection, err := svc.ListWords(ctx)
	require.NoError(t, err)
	assert.Empty(t, collection)

	err = svc.DeleteWord(ctx, "general", "w")
	require.Error(t, err)
}

func TestGetDue_SaveNeverCalledOnReads(t *testing.T) {
	st := new(mocks.MockStore)
	st.On("Load", mock.Anything).Return(models.Collection{}, nil)
	svc := services.NewSchedulerService(st, true)

	_, err := svc.GetDue(context.Background(), models.ReviewTypeAll, 20)
	require.NoError(t, err)
	_, err = svc.GetStats(context.Background())
	require.NoError(t, err)

	st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
