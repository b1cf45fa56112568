// Package web serves the assistant over a JSON HTTP API.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rcliao/moderk/internal/assistant"
)

// Server is the moderk HTTP API server
type Server struct {
	app    *assistant.Assistant
	router *gin.Engine
	log    *slog.Logger
	now    func() time.Time
}

// NewServer creates a new API server
func NewServer(app *assistant.Assistant, log *slog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	s := &Server{
		app:    app,
		router: router,
		log:    log,
		now:    time.Now,
	}

	api := router.Group("/api")
	{
		api.GET("/messages", s.handleListMessages)
		api.POST("/messages/:id/read", s.handleMarkRead)
		api.POST("/chat", s.handleChat)

		api.GET("/reminders", s.handleListReminders)
		api.GET("/reminders/today", s.handleTodayReminders)
		api.POST("/reminders", s.handleCreateReminder)
		api.PATCH("/reminders/:id", s.handleUpdateReminder)
		api.DELETE("/reminders/:id", s.handleDeleteReminder)
		api.POST("/reminders/:id/toggle", s.handleToggleReminder)

		api.GET("/memories", s.handleListMemories)
		api.POST("/memories", s.handleCreateMemory)
		api.PATCH("/memories/:id", s.handleUpdateMemory)
		api.DELETE("/memories/:id", s.handleDeleteMemory)

		api.GET("/profile", s.handleGetProfile)
		api.PATCH("/profile", s.handleUpdateProfile)

		api.GET("/speech", s.handleSpeechStatus)
		api.POST("/speech/speak", s.handleSpeak)
		api.POST("/speech/stop", s.handleStopSpeaking)
		api.POST("/speech/listen", s.handleStartListening)
		api.DELETE("/speech/listen", s.handleStopListening)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
