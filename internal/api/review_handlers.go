package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mlopes/wordflash/internal/errors"
	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/srs"
)

type reviewRequest struct {
	IsCorrect       bool     `json:"isCorrect"`
	ResponseTimeMs  *int     `json:"responseTimeMs"`
	ConfidenceLevel *float64 `json:"confidenceLevel"`
}

// outcome applies defaults for omitted fields and clamps confidence to
// [0,1]; the scheduling core assumes the caller has done this.
func (req reviewRequest) outcome() models.ReviewOutcome {
	out := models.ReviewOutcome{
		IsCorrect:       req.IsCorrect,
		ResponseTimeMs:  srs.DefaultResponseTimeMs,
		ConfidenceLevel: srs.DefaultConfidenceLevel,
	}
	if req.ResponseTimeMs != nil && *req.ResponseTimeMs > 0 {
		out.ResponseTimeMs = *req.ResponseTimeMs
	}
	if req.ConfidenceLevel != nil {
		c := *req.ConfidenceLevel
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		out.ConfidenceLevel = c
	}
	return out
}

func (s *Server) handleReviewWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	category := chi.URLParam(r, "category")
	word := chi.URLParam(r, "word")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid review body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	log.Debug("reviewing word: category=%s, word=%s, correct=%t", category, word, req.IsCorrect)

	updated, err := s.Scheduler.ProcessReview(r.Context(), category, word, req.outcome())
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("word reviewed: %s/%s, next review in %d days", category, word, updated.Interval)
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDueWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	reviewType := r.URL.Query().Get("type")
	limit := s.DueLimit
	if limit <= 0 {
		limit = srs.DefaultDueLimit
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Warn("invalid limit value: %s", v)
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
		limit = n
	}

	due, err := s.Scheduler.GetDue(r.Context(), reviewType, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if due == nil {
		due = []models.DueWord{}
	}
	writeJSON(w, r, http.StatusOK, due)
}
