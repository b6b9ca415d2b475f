package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

type ChatHandler struct {
	sessions *service.SessionManager
}

func NewChatHandler(sessions *service.SessionManager) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
	}
}

// HandleChat forwards the message to the current session. Query-time
// failures come back as response text, never as an HTTP error status.
func (h *ChatHandler) HandleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		session := h.sessions.Current()
		if session == nil {
			h.sendError(w, "Please upload a document first", http.StatusBadRequest)
			return
		}

		var chatRequest types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&chatRequest); err != nil || chatRequest.Message == "" {
			h.sendError(w, "No message provided", http.StatusBadRequest)
			return
		}

		response := session.Ask(r.Context(), chatRequest.Message)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(types.ChatResponse{
			Response: response,
		})
	}
}

func (h *ChatHandler) sendError(w http.ResponseWriter, message string, status int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(types.ErrorResponse{Error: message})
}
