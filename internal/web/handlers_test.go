package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/moderk/internal/assistant"
	"github.com/rcliao/moderk/internal/logging"
	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/speech"
	"github.com/rcliao/moderk/internal/state"
	"github.com/rcliao/moderk/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubReplier struct{}

func (stubReplier) GenerateReply(_ context.Context, text string) string {
	return "تم: " + text
}

var testNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := logging.Discard()
	st, err := state.Open(context.Background(), store.NewMemoryStore(), state.WithLogger(log))
	require.NoError(t, err)
	app := assistant.New(st, speech.NewCoordinator(nil, nil, speech.WithLogger(log)), stubReplier{},
		assistant.WithLogger(log), assistant.WithClock(func() time.Time { return testNow }))
	s := NewServer(app, log)
	s.now = func() time.Time { return testNow }
	return s
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestChat_AppendsBothMessages(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/chat", gin.H{"text": "مرحبا"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[model.Message](t, w)
	assert.Equal(t, "تم: مرحبا", reply.Content)
	assert.Equal(t, model.SenderAssistant, reply.Sender)

	w = do(t, s, http.MethodGet, "/api/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Messages []model.Message `json:"messages"`
		Unread   int             `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Messages, 2)
	assert.Equal(t, 1, list.Unread)

	w = do(t, s, http.MethodPost, "/api/messages/"+reply.ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChat_EmptyTextIsBadRequest(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/chat", gin.H{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestReminders_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reminders", gin.H{
		"title":    "موعد الطبيب",
		"date":     testNow.Add(3 * time.Hour),
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Reminder](t, w)
	require.NotEmpty(t, created.ID)

	w = do(t, s, http.MethodGet, "/api/reminders/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Reminder](t, w), 1)

	w = do(t, s, http.MethodPatch, "/api/reminders/"+created.ID, gin.H{"title": "موعد طبيب الأسنان"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "موعد طبيب الأسنان", decode[model.Reminder](t, w).Title)

	w = do(t, s, http.MethodPost, "/api/reminders/"+created.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[model.Reminder](t, w).IsCompleted)

	w = do(t, s, http.MethodGet, "/api/reminders?filter=completed", nil)
	assert.Len(t, decode[[]model.Reminder](t, w), 1)

	w = do(t, s, http.MethodDelete, "/api/reminders/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodGet, "/api/reminders", nil)
	assert.Empty(t, decode[[]model.Reminder](t, w))
}

func TestReminders_ValidationAndNotFound(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reminders", gin.H{"title": "x", "date": testNow, "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "priority")

	w = do(t, s, http.MethodPatch, "/api/reminders/nope", gin.H{"title": "y"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/api/reminders/nope/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemories_CreateSearchUpdate(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/memories", gin.H{
		"title": "زفاف سارة",
		"date":  testNow,
		"tags":  []string{"عائلة"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Memory](t, w)

	w = do(t, s, http.MethodGet, "/api/memories?q="+url.QueryEscape("عائلة"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Memory](t, w), 1)

	w = do(t, s, http.MethodPatch, "/api/memories/"+created.ID, gin.H{"location": "جدة"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "جدة", decode[model.Memory](t, w).Location)

	w = do(t, s, http.MethodDelete, "/api/memories/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestProfile_PatchMergesPreferences(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPatch, "/api/profile", gin.H{"preferences": gin.H{"voiceSpeed": 1.25}})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[model.Profile](t, w)
	assert.Equal(t, 1.25, p.Preferences.VoiceSpeed)
	assert.Equal(t, 80, p.Preferences.VoiceVolume)

	w = do(t, s, http.MethodPatch, "/api/profile", gin.H{"preferences": gin.H{"voiceSpeed": 3}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, 1.25, decode[model.Profile](t, w).Preferences.VoiceSpeed)
}

func TestSpeech_UnsupportedHost(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/speech/listen", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = do(t, s, http.MethodPost, "/api/speech/speak", gin.H{"text": "مرحبا"})
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = do(t, s, http.MethodGet, "/api/speech", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[map[string]any](t, w)
	assert.Equal(t, false, status["isSpeaking"])
	assert.Equal(t, false, status["isListening"])

	w = do(t, s, http.MethodDelete, "/api/speech/listen", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decode[map[string]any](t, w)["transcript"])
}

func TestMemories_DeduplicateTagsAndPeople(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/memories", gin.H{
		"title":  "عيد الأضحى",
		"date":   testNow,
		"tags":   []string{"family", "family"},
		"people": []string{"علي", "علي"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Memory](t, w)
	assert.Equal(t, []string{"family"}, created.Tags)
	assert.Equal(t, []string{"علي"}, created.People)

	w = do(t, s, http.MethodPatch, "/api/memories/"+created.ID, gin.H{"tags": []string{"travel", "travel"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"travel"}, decode[model.Memory](t, w).Tags)

	w = do(t, s, http.MethodGet, "/api/memories", nil)
	list := decode[[]model.Memory](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"travel"}, list[0].Tags)
	assert.Equal(t, []string{"علي"}, list[0].People)
}

func TestCreate_DuplicateIDConflicts(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reminders", gin.H{"id": "r1", "title": "الأول", "date": testNow})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, s, http.MethodPost, "/api/reminders", gin.H{"id": "r1", "title": "الثاني", "date": testNow})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodGet, "/api/reminders", nil)
	list := decode[[]model.Reminder](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "الأول", list[0].Title)

	w = do(t, s, http.MethodPost, "/api/memories", gin.H{"id": "m1", "title": "رحلة", "date": testNow})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, s, http.MethodPost, "/api/memories", gin.H{"id": "m1", "title": "أخرى", "date": testNow})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestToggleReminder_AfterDeleteIsNotFound(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/reminders", gin.H{"id": "r1", "title": "الدواء", "date": testNow})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, s, http.MethodDelete, "/api/reminders/r1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, s, http.MethodPost, "/api/reminders/r1/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
