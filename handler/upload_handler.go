package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
	"github.com/tranhn/docchat-be/utils"
)

type UploadHandler struct {
	fileService *service.FileService
	sessions    *service.SessionManager
}

func NewUploadHandler(fileService *service.FileService, sessions *service.SessionManager) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
		sessions:    sessions,
	}
}

// HandleUpload accepts a multipart PDF upload, persists it, and runs the
// ingestion pipeline synchronously before responding. Ingestion failure is
// reported in the summary field of a 200 response, not as an HTTP error.
func (h *UploadHandler) HandleUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		file, header, err := r.FormFile("file")
		if err != nil {
			h.sendError(w, "No file part", http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Filename == "" {
			h.sendError(w, "No selected file", http.StatusBadRequest)
			return
		}

		if !utils.AllowedFile(header.Filename) {
			h.sendError(w, "Invalid file type", http.StatusBadRequest)
			return
		}

		filePath, err := h.fileService.SaveUpload(file, header.Filename)
		if err != nil {
			log.Printf("Failed to save upload %s: %v", header.Filename, err)
			h.sendError(w, "Failed to save file", http.StatusInternalServerError)
			return
		}

		session := h.sessions.StartSession()
		log.Printf("Processing document %s (session %s)", filePath, session.ID())
		session.Initialize(r.Context(), filePath)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(types.UploadResponse{
			Message: "File uploaded successfully",
			Summary: session.Summary(),
		})
	}
}

func (h *UploadHandler) sendError(w http.ResponseWriter, message string, status int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(types.ErrorResponse{Error: message})
}
