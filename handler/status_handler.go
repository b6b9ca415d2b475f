package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

type StatusHandler struct {
	sessions *service.SessionManager
}

func NewStatusHandler(sessions *service.SessionManager) *StatusHandler {
	return &StatusHandler{
		sessions: sessions,
	}
}

// HandleStatus reports whether a session exists and its stored summary.
// It never errors.
func (h *StatusHandler) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		status := types.StatusResponse{}
		if session := h.sessions.Current(); session != nil {
			status.Initialized = true
			summary := session.Summary()
			status.Summary = &summary
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(status)
	}
}
