package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/models"
	"innkeeper/services/booking"
	"innkeeper/services/catalog"
	"innkeeper/services/llm"
	"innkeeper/services/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, handler gin.HandlerFunc, method, path, body string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h := NewChatHandler(nil, session.NewMemoryStore("prompt"), nil)

	w := performJSON(t, h.HandleChat, http.MethodPost, "/chat/s1",
		`{"message": "   "}`, gin.Params{{Key: "sessionID", Value: "s1"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message cannot be empty")
}

func TestResetUnknownSession(t *testing.T) {
	h := NewChatHandler(nil, session.NewMemoryStore("prompt"), nil)

	w := performJSON(t, h.HandleReset, http.MethodPost, "/reset/ghost",
		"", gin.Params{{Key: "sessionID", Value: "ghost"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(session.ResetSessionNotFound))
}

func TestListHotels(t *testing.T) {
	ix := catalog.NewIndex([]models.HotelRecord{
		{HotelName: "Grand Palace", Location: "Ahmedabad", PricePerNight: 100, NumberOfGuests: 2},
	})
	h := NewHotelsHandler(ix)

	w := performJSON(t, h.HandleList, http.MethodGet, "/hotels", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Grand Palace"`)
}

func TestAudioHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reply.mp3"), []byte("mp3"), 0o644))
	h := NewAudioHandler(dir)

	t.Run("serves stored file", func(t *testing.T) {
		w := performJSON(t, h.HandleGet, http.MethodGet, "/audio/reply.mp3",
			"", gin.Params{{Key: "filename", Value: "reply.mp3"}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown file", func(t *testing.T) {
		w := performJSON(t, h.HandleGet, http.MethodGet, "/audio/missing.mp3",
			"", gin.Params{{Key: "filename", Value: "missing.mp3"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("traversal attempt", func(t *testing.T) {
		w := performJSON(t, h.HandleGet, http.MethodGet, "/audio/x",
			"", gin.Params{{Key: "filename", Value: "../secret.mp3"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong extension", func(t *testing.T) {
		w := performJSON(t, h.HandleGet, http.MethodGet, "/audio/reply.wav",
			"", gin.Params{{Key: "filename", Value: "reply.wav"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", booking.NewValidationError("Check-out date must be after check-in date"), http.StatusBadRequest},
		{"not found", booking.NewNotFoundError("Selected hotel not found"), http.StatusNotFound},
		{"upstream", llm.ErrUpstream, http.StatusBadGateway},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
