package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/worldatlas/globequiz/internal/geo"
)

// HealthResponse reports the status of the server's dependencies.
type HealthResponse struct {
	Checks map[string]string `json:"checks"`
}

func handleHealth(logger *slog.Logger, db *sql.DB, index *geo.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]string{
			"sqlite":    "ok",
			"catalogue": "ok",
		}
		status := http.StatusOK

		if err := db.PingContext(ctx); err != nil {
			logger.Error("health check failed", "name", "sqlite", "error", err)
			checks["sqlite"] = "error"
			status = http.StatusServiceUnavailable
		}

		if index.Len() == 0 {
			checks["catalogue"] = "error"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(HealthResponse{Checks: checks})
	}
}
