package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/words", s.handleListWords)
	r.Post("/words", s.handleAddWord)
	r.Delete("/words/{category}/{word}", s.handleDeleteWord)
	r.Post("/words/{category}/{word}/review", s.handleReviewWord)

	r.Get("/due", s.handleDueWords)
	r.Get("/stats", s.handleStats)

	return r
}
