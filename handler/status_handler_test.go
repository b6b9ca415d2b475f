package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tranhn/docchat-be/types"
)

func getStatus(t *testing.T, h *StatusHandler) types.StatusResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	h.HandleStatus()(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestStatusBeforeUpload(t *testing.T) {
	h := NewStatusHandler(newTestSessions(t, "unused"))

	resp := getStatus(t, h)
	assert.False(t, resp.Initialized)
	assert.Nil(t, resp.Summary)
}

func TestStatusAfterUpload(t *testing.T) {
	sessions := newTestSessions(t, "Hello world.")
	uploadReady(t, sessions)

	resp := getStatus(t, NewStatusHandler(sessions))
	assert.True(t, resp.Initialized)
	require.NotNil(t, resp.Summary)
	assert.NotEmpty(t, *resp.Summary)
}

func TestStatusAfterFailedIngestion(t *testing.T) {
	sessions := newTestSessions(t, "")
	uploadReady(t, sessions)

	resp := getStatus(t, NewStatusHandler(sessions))
	assert.True(t, resp.Initialized)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, "Failed to process document. No summary available.", *resp.Summary)
}
