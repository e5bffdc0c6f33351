package services

import (
	"context"
	"strings"
	"time"

	"github.com/mlopes/wordflash/internal/errors"
	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/srs"
	"github.com/mlopes/wordflash/internal/store"
)

// SchedulerService is the single entry point for review scheduling. Every
// mutation goes through the mastery updater so derived fields (interval,
// ease, nextReview) never drift out of sync with reviewCount/difficulty.
//
// The service holds no state between calls; each invocation re-reads the
// full collection. Concurrent review submissions for the same word are a
// read-modify-write race where the last write wins; the scheduling math is
// self-correcting on the next review, so no locking is done here.
type SchedulerService interface {
	ProcessReview(ctx context.Context, category, word string, outcome models.ReviewOutcome) (*models.WordRecord, error)
	GetDue(ctx context.Context, reviewType string, limit int) ([]models.DueWord, error)
	GetStats(ctx context.Context) (*models.StudyStats, error)
	AddWord(ctx context.Context, word, category, explanation string) (*models.WordRecord, error)
	DeleteWord(ctx context.Context, category, word string) error
	ListWords(ctx context.Context) (models.Collection, error)
}

type schedulerService struct {
	store        store.Store
	missingAsNew bool
	now          func() time.Time
}

// NewSchedulerService creates a new SchedulerService backed by the given store.
func NewSchedulerService(st store.Store, statsMissingAsNew bool) SchedulerService {
	return &schedulerService{
		store:        st,
		missingAsNew: statsMissingAsNew,
		now:          time.Now,
	}
}

func (s *schedulerService) ProcessReview(ctx context.Context, category, word string, outcome models.ReviewOutcome) (*models.WordRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug("processing review: category=%s, word=%s, correct=%t", category, word, outcome.IsCorrect)

	if outcome.ResponseTimeMs <= 0 {
		outcome.ResponseTimeMs = srs.DefaultResponseTimeMs
	}

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return nil, errors.NewInternalError(err)
	}

	idx := collection.Find(category, word)
	if idx < 0 {
		return nil, errors.NewNotFoundError("word", word)
	}

	updated := srs.ApplyReview(collection[category][idx], outcome, s.now())
	collection[category][idx] = updated

	log.Debug("review applied: interval=%d days, ease=%.2f, difficulty=%s",
		updated.Interval, updated.EaseFactor, updated.Difficulty)

	if err := s.store.Save(ctx, collection); err != nil {
		log.Error("failed to save collection: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return &updated, nil
}

func (s *schedulerService) GetDue(ctx context.Context, reviewType string, limit int) ([]models.DueWord, error) {
	log := logger.FromContext(ctx)
	log.Debug("selecting due words: type=%s, limit=%d", reviewType, limit)

	if reviewType == "" {
		reviewType = models.ReviewTypeAll
	}
	if !models.ValidReviewType(reviewType) {
		return nil, errors.NewValidationError("type", "must be one of all, new, learning, review, difficult")
	}

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return nil, errors.NewInternalError(err)
	}

	due := srs.SelectDue(collection, reviewType, limit, s.now())
	log.Debug("found %d due words", len(due))
	return due, nil
}

func (s *schedulerService) GetStats(ctx context.Context) (*models.StudyStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("aggregating study stats")

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return nil, errors.NewInternalError(err)
	}

	stats := srs.Aggregate(collection, s.now(), srs.AggregateOptions{TreatMissingAsNew: s.missingAsNew})
	return &stats, nil
}

func (s *schedulerService) AddWord(ctx context.Context, word, category, explanation string) (*models.WordRecord, error) {
	log := logger.FromContext(ctx)

	word = strings.ToLower(strings.TrimSpace(word))
	category = strings.TrimSpace(category)
	if word == "" {
		return nil, errors.NewValidationError("word", "cannot be empty")
	}
	if category == "" {
		category = "general"
	}
	log.Debug("adding word: category=%s, word=%s", category, word)

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if collection.Find(category, word) >= 0 {
		return nil, errors.NewConflictError("word", word)
	}

	rec := models.NewWordRecord(word, category, explanation, s.now())
	collection[category] = append(collection[category], rec)

	if err := s.store.Save(ctx, collection); err != nil {
		log.Error("failed to save collection: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("word added: %s/%s", category, word)
	return &rec, nil
}

func (s *schedulerService) DeleteWord(ctx context.Context, category, word string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting word: category=%s, word=%s", category, word)

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return errors.NewInternalError(err)
	}

	idx := collection.Find(category, word)
	if idx < 0 {
		return errors.NewNotFoundError("word", word)
	}

	words := collection[category]
	collection[category] = append(words[:idx], words[idx+1:]...)
	if len(collection[category]) == 0 {
		delete(collection, category)
	}

	if err := s.store.Save(ctx, collection); err != nil {
		log.Error("failed to save collection: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("word deleted: %s/%s", category, word)
	return nil
}

func (s *schedulerService) ListWords(ctx context.Context) (models.Collection, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing all words")

	collection, err := s.store.Load(ctx)
	if err != nil {
		log.Error("failed to load collection: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return collection, nil
}
