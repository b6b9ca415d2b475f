package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tranhn/docchat-be/service"
	"github.com/tranhn/docchat-be/types"
)

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleChat()(rec, req)
	return rec
}

func TestChatBeforeUpload(t *testing.T) {
	h := NewChatHandler(newTestSessions(t, "unused"))

	rec := postChat(t, h, `{"message": "hello?"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Please upload a document first", resp.Error)
}

func TestChatMissingMessage(t *testing.T) {
	sessions := newTestSessions(t, "Hello world.")
	uploadReady(t, sessions)
	h := NewChatHandler(sessions)

	for _, body := range []string{`{}`, ``, `{"message": ""}`, `not json`} {
		rec := postChat(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "No message provided", resp.Error)
	}
}

func TestChatAnswersFromDocument(t *testing.T) {
	sessions := newTestSessions(t, "Hello world.")
	uploadReady(t, sessions)
	h := NewChatHandler(sessions)

	rec := postChat(t, h, `{"message": "What does the document say?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "Hello world.")
}

func TestChatAgainstFailedSession(t *testing.T) {
	sessions := newTestSessions(t, "")
	uploadReady(t, sessions)
	h := NewChatHandler(sessions)

	rec := postChat(t, h, `{"message": "anything"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sorry, the document hasn't been processed correctly. Unable to answer queries.", resp.Response)
}

// uploadReady pushes one upload through the upload handler so the session
// manager has a current session.
func uploadReady(t *testing.T, sessions *service.SessionManager) {
	t.Helper()
	h := NewUploadHandler(newTestFileService(t), sessions)
	rec := httptest.NewRecorder()
	h.HandleUpload()(rec, multipartUpload(t, "file", "doc.pdf", "%PDF-1.4"))
	require.Equal(t, http.StatusOK, rec.Code)
}
