package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/moderk/internal/assistant"
	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/speech"
)

// writeError maps domain errors onto status codes.
func (s *Server) writeError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Errors})
	case errors.Is(err, assistant.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, assistant.ErrExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, speech.ErrUnsupported):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Messages

func (s *Server) handleListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"messages": s.app.Messages(),
		"unread":   s.app.UnreadCount(),
	})
}

func (s *Server) handleMarkRead(c *gin.Context) {
	if err := s.app.MarkMessageRead(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type chatRequest struct {
	Text  string `json:"text"`
	Speak bool   `json:"speak"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text is required")
		return
	}

	reply, err := s.app.Chat(c.Request.Context(), req.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if req.Speak {
		if err := s.app.StartSpeaking(reply.Content); err != nil {
			s.log.Warn("cannot speak reply", "error", err)
		}
	}
	c.JSON(http.StatusOK, reply)
}

// Reminders

func (s *Server) handleListReminders(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, s.app.SearchReminders(q))
		return
	}
	switch c.Query("filter") {
	case "upcoming":
		c.JSON(http.StatusOK, s.app.UpcomingReminders(s.now()))
	case "completed":
		c.JSON(http.StatusOK, s.app.CompletedReminders())
	default:
		c.JSON(http.StatusOK, s.app.Reminders())
	}
}

func (s *Server) handleTodayReminders(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.TodayReminders(s.now()))
}

func (s *Server) handleCreateReminder(c *gin.Context) {
	var r model.Reminder
	if err := c.ShouldBindJSON(&r); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := s.app.CreateReminder(c.Request.Context(), r)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateReminder(c *gin.Context) {
	var p model.ReminderPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := s.app.EditReminder(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteReminder(c *gin.Context) {
	if err := s.app.RemoveReminder(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleToggleReminder(c *gin.Context) {
	r, ok, err := s.app.ToggleReminder(c.Request.Context(), c.Param("id"))
	switch {
	case err != nil:
		s.writeError(c, err)
	case !ok:
		s.writeError(c, assistant.ErrNotFound)
	default:
		c.JSON(http.StatusOK, r)
	}
}

// Memories

func (s *Server) handleListMemories(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, s.app.SearchMemories(q))
		return
	}
	c.JSON(http.StatusOK, s.app.Memories())
}

func (s *Server) handleCreateMemory(c *gin.Context) {
	var m model.Memory
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, err.Error())
		return
	}
	created, err := s.app.CreateMemory(c.Request.Context(), m)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateMemory(c *gin.Context) {
	var p model.MemoryPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := s.app.EditMemory(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteMemory(c *gin.Context) {
	if err := s.app.RemoveMemory(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Profile

func (s *Server) handleGetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Profile())
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var p model.ProfilePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err.Error())
		return
	}
	updated, err := s.app.EditProfile(c.Request.Context(), p)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Speech

func (s *Server) speechStatus() gin.H {
	return gin.H{
		"isSpeaking":  s.app.IsSpeaking(),
		"isListening": s.app.IsListening(),
		"transcript":  s.app.Transcript(),
	}
}

func (s *Server) handleSpeechStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.speechStatus())
}

type speakRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleSpeak(c *gin.Context) {
	var req speakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(c, "text is required")
		return
	}
	if err := s.app.StartSpeaking(req.Text); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, s.speechStatus())
}

func (s *Server) handleStopSpeaking(c *gin.Context) {
	s.app.StopSpeaking()
	c.JSON(http.StatusOK, s.speechStatus())
}

func (s *Server) handleStartListening(c *gin.Context) {
	if err := s.app.StartListening(c.Request.Context()); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, s.speechStatus())
}

// handleStopListening ends capture; with ?reply=true the transcript is sent
// through chat and the reply spoken.
func (s *Server) handleStopListening(c *gin.Context) {
	if c.Query("reply") != "true" {
		c.JSON(http.StatusOK, gin.H{"transcript": s.app.StopListening()})
		return
	}
	transcript, reply, err := s.app.VoiceTurn(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	resp := gin.H{"transcript": transcript}
	if reply.ID != "" {
		resp["reply"] = reply
	}
	c.JSON(http.StatusOK, resp)
}
