package api

import (
	"encoding/json"
	"net/http"

	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/services"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	Scheduler services.SchedulerService
	DueLimit  int
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
