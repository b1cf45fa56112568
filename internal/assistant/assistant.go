// Package assistant exposes the contract every screen consumes: store
// snapshots and mutators, speech activity state and controls, and the chat
// flow that calls the remote reply gateway.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/speech"
	"github.com/rcliao/moderk/internal/state"
)

// Replier produces an assistant reply. Implementations never fail; they
// substitute a fallback text instead.
type Replier interface {
	GenerateReply(ctx context.Context, userText string) string
}

// Assistant is the UI-facing facade. The embedded Store provides the
// snapshot getters and collection mutators.
type Assistant struct {
	*state.Store

	speech  *speech.Coordinator
	replier Replier
	now     func() time.Time
	log     *slog.Logger
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock overrides time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) {
		a.log = l
	}
}

// New wires an Assistant around an opened store.
func New(st *state.Store, sp *speech.Coordinator, r Replier, opts ...Option) *Assistant {
	a := &Assistant{
		Store:   st,
		speech:  sp,
		replier: r,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IsSpeaking reports whether an utterance is playing.
func (a *Assistant) IsSpeaking() bool { return a.speech.IsSpeaking() }

// IsListening reports whether speech capture is active.
func (a *Assistant) IsListening() bool { return a.speech.IsListening() }

// CanListen reports whether the host supports speech capture.
func (a *Assistant) CanListen() bool { return a.speech.CanListen() }

// StartSpeaking speaks text using the voice preferences in the profile at
// the moment of the call.
func (a *Assistant) StartSpeaking(text string) error {
	return a.speech.Speak(text, VoiceFor(a.Profile()))
}

// StopSpeaking cuts the current utterance short.
func (a *Assistant) StopSpeaking() { a.speech.StopSpeaking() }

// WaitSpeaking blocks until the current utterance ends.
func (a *Assistant) WaitSpeaking(ctx context.Context) error { return a.speech.WaitSpeaking(ctx) }

// StartListening begins speech capture. It returns speech.ErrUnsupported
// when the host cannot capture.
func (a *Assistant) StartListening(ctx context.Context) error {
	return a.speech.StartListening(ctx)
}

// StopListening ends capture and returns the final transcript.
func (a *Assistant) StopListening() string { return a.speech.StopListening() }

// Transcript returns the partial transcript of the active capture.
func (a *Assistant) Transcript() string { return a.speech.Transcript() }

// VoiceFor maps profile preferences onto synthesis parameters.
func VoiceFor(p model.Profile) speech.Voice {
	return speech.Voice{
		Lang:   speech.DefaultLang,
		Volume: float64(p.Preferences.VoiceVolume) / 100,
		Rate:   p.Preferences.VoiceSpeed,
	}
}

// Chat records the user's text, asks the gateway for a reply and records
// that too. It returns the assistant message.
func (a *Assistant) Chat(ctx context.Context, text string) (model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, fmt.Errorf("chat: empty message")
	}

	user := model.Message{
		ID:        model.NewID(),
		Content:   text,
		Sender:    model.SenderUser,
		Timestamp: a.now(),
		IsRead:    true,
	}
	if err := a.AddMessage(ctx, user); err != nil {
		return model.Message{}, fmt.Errorf("chat: %w", err)
	}

	reply := model.Message{
		ID:        model.NewID(),
		Content:   a.replier.GenerateReply(ctx, text),
		Sender:    model.SenderAssistant,
		Timestamp: a.now(),
	}
	if err := a.AddMessage(ctx, reply); err != nil {
		return reply, fmt.Errorf("chat: %w", err)
	}

	a.log.Debug("chat turn recorded", slog.String("user_id", user.ID), slog.String("reply_id", reply.ID))
	return reply, nil
}

// VoiceTurn ends capture, sends the transcript through Chat and speaks the
// reply. An empty transcript ends the turn without a reply.
func (a *Assistant) VoiceTurn(ctx context.Context) (transcript string, reply model.Message, err error) {
	transcript = a.StopListening()
	if strings.TrimSpace(transcript) == "" {
		return "", model.Message{}, nil
	}
	reply, err = a.Chat(ctx, transcript)
	if err != nil {
		return transcript, reply, err
	}
	if err := a.StartSpeaking(reply.Content); err != nil {
		a.log.Warn("cannot speak reply", slog.String("error", err.Error()))
	}
	return transcript, reply, nil
}

// Greeting is the welcome line shown and spoken on the home screen.
func (a *Assistant) Greeting() string {
	return fmt.Sprintf("مرحباً %s، كيف يمكنني مساعدتك اليوم؟", a.Profile().Name)
}

// TodaySummary returns the greeting plus today's outstanding reminders.
func (a *Assistant) TodaySummary() (string, []model.Reminder) {
	return a.Greeting(), a.TodayReminders(a.now())
}
