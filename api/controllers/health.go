package controllers

import (
	"net/http"
	"time"

	"github.com/sarayacafe/menu-backend/api/responses"
)

type healthPayload struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Health answers the uptime probe the dashboard pings on load.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, healthPayload{
			Success:   true,
			Message:   "API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
