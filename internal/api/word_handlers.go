package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlopes/wordflash/internal/errors"
	"github.com/mlopes/wordflash/internal/logger"
)

type addWordRequest struct {
	Word        string `json:"word"`
	Category    string `json:"category"`
	Explanation string `json:"explanation"`
}

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	collection, err := s.Scheduler.ListWords(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, collection)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req addWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid add-word body: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	rec, err := s.Scheduler.AddWord(r.Context(), req.Word, req.Category, req.Explanation)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, rec)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	word := chi.URLParam(r, "word")

	if err := s.Scheduler.DeleteWord(r.Context(), category, word); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
