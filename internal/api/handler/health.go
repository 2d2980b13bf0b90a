package handler

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/repository/mongo"
)

// HealthCheck returns a simple liveness response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including store connectivity
func ReadyCheck(db *mongo.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			response.Error(w, http.StatusServiceUnavailable, "store not configured")
			return
		}
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "store not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
