package types

// UploadResponse is returned by POST /api/upload. Summary carries either
// the initial document summary or the fail-soft failure string.
type UploadResponse struct {
	Message string `json:"message"`
	Summary string `json:"summary"`
}

// ChatResponse is returned by POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// StatusResponse is returned by GET /api/status. Summary is null until a
// session exists.
type StatusResponse struct {
	Initialized bool    `json:"initialized"`
	Summary     *string `json:"summary"`
}

// ErrorResponse is the envelope for all 400-class validation errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
