// Package speech coordinates text-to-speech playback and speech capture.
//
// Speaking and listening are independent activities, each either idle or
// active. At most one utterance plays at a time: Speak cancels the current
// one before starting. Capture accumulates partial transcript fragments
// until StopListening returns the final transcript.
package speech

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/rcliao/moderk/internal/chunker"
)

// DefaultLang is the locale used for synthesis and capture.
const DefaultLang = "ar-SA"

// ErrUnsupported is returned when the host has no engine for the activity.
var ErrUnsupported = errors.New("speech: capability unsupported")

// Voice holds synthesis parameters. Volume is 0.0-1.0, Rate is 0.5-2.0.
type Voice struct {
	Lang   string
	Volume float64
	Rate   float64
}

// Synthesizer speaks text. Speak blocks until playback ends or ctx is done.
type Synthesizer interface {
	Speak(ctx context.Context, text string, v Voice) error
}

// Recognizer captures speech. Listen streams transcript fragments until
// ctx is done, then closes the channel.
type Recognizer interface {
	Listen(ctx context.Context, lang string) (<-chan string, error)
}

// Coordinator owns the speak and listen activities.
type Coordinator struct {
	synth Synthesizer
	rec   Recognizer
	lang  string
	log   *slog.Logger

	// speakCtl and listenCtl serialize start/stop calls per activity.
	speakCtl  sync.Mutex
	listenCtl sync.Mutex

	mu          sync.Mutex
	speaking    bool
	speakGen    uint64
	speakCancel context.CancelFunc
	speakDone   chan struct{}

	listening    bool
	listenCancel context.CancelFunc
	listenDone   chan struct{}
	fragments    []string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.log = l
	}
}

// WithLang sets the capture locale.
func WithLang(lang string) Option {
	return func(c *Coordinator) {
		c.lang = lang
	}
}

// NewCoordinator returns a Coordinator. A nil synth or rec marks that
// activity unsupported.
func NewCoordinator(synth Synthesizer, rec Recognizer, opts ...Option) *Coordinator {
	c := &Coordinator{
		synth: synth,
		rec:   rec,
		lang:  DefaultLang,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CanSpeak reports whether a synthesizer is available.
func (c *Coordinator) CanSpeak() bool { return c.synth != nil }

// CanListen reports whether a recognizer is available.
func (c *Coordinator) CanListen() bool { return c.rec != nil }

// IsSpeaking reports whether an utterance is playing.
func (c *Coordinator) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// IsListening reports whether capture is active.
func (c *Coordinator) IsListening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listening
}

// Speak stops any active utterance and starts speaking text with v.
// It returns once playback has started; the activity goes idle when the
// synthesizer finishes.
func (c *Coordinator) Speak(text string, v Voice) error {
	if c.synth == nil {
		return ErrUnsupported
	}
	segments := chunker.Chunk(text, chunker.DefaultOptions())
	if len(segments) == 0 {
		return nil
	}
	if v.Lang == "" {
		v.Lang = c.lang
	}

	c.speakCtl.Lock()
	defer c.speakCtl.Unlock()
	c.stopSpeakingLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.mu.Lock()
	c.speakGen++
	gen := c.speakGen
	c.speaking = true
	c.speakCancel = cancel
	c.speakDone = done
	c.mu.Unlock()

	go c.play(ctx, gen, done, segments, v)
	return nil
}

func (c *Coordinator) play(ctx context.Context, gen uint64, done chan struct{}, segments []string, v Voice) {
	defer close(done)
	defer func() {
		c.mu.Lock()
		if c.speakGen == gen {
			c.speaking = false
			c.speakCancel = nil
		}
		c.mu.Unlock()
	}()

	for _, seg := range segments {
		if ctx.Err() != nil {
			return
		}
		if err := c.synth.Speak(ctx, seg, v); err != nil {
			if ctx.Err() == nil {
				c.log.Warn("speech synthesis failed", slog.String("error", err.Error()))
			}
			return
		}
	}
}

// StopSpeaking discards the remaining utterance and returns once playback
// has stopped.
func (c *Coordinator) StopSpeaking() {
	c.speakCtl.Lock()
	defer c.speakCtl.Unlock()
	c.stopSpeakingLocked()
}

func (c *Coordinator) stopSpeakingLocked() {
	c.mu.Lock()
	cancel, done := c.speakCancel, c.speakDone
	c.speaking = false
	c.speakCancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// WaitSpeaking blocks until the current utterance finishes or ctx is done.
func (c *Coordinator) WaitSpeaking(ctx context.Context) error {
	c.mu.Lock()
	done := c.speakDone
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartListening begins capture with a fresh transcript. It fails fast with
// ErrUnsupported when no recognizer is available. Calling it while already
// listening is a no-op. Capture outlives ctx's cancellation; only
// StopListening ends it.
func (c *Coordinator) StartListening(ctx context.Context) error {
	if c.rec == nil {
		return ErrUnsupported
	}

	c.listenCtl.Lock()
	defer c.listenCtl.Unlock()

	if c.IsListening() {
		return nil
	}

	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	frags, err := c.rec.Listen(lctx, c.lang)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.listening = true
	c.listenCancel = cancel
	c.listenDone = done
	c.fragments = nil
	c.mu.Unlock()

	go func() {
		defer close(done)
		for f := range frags {
			c.mu.Lock()
			c.fragments = append(c.fragments, f)
			c.mu.Unlock()
		}
	}()
	return nil
}

// Transcript returns the partial transcript captured so far.
func (c *Coordinator) Transcript() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.fragments, " ")
}

// StopListening ends capture and returns the final transcript. The
// activity resets, so the next StartListening begins empty.
func (c *Coordinator) StopListening() string {
	c.listenCtl.Lock()
	defer c.listenCtl.Unlock()

	c.mu.Lock()
	if !c.listening {
		c.mu.Unlock()
		return ""
	}
	cancel, done := c.listenCancel, c.listenDone
	c.mu.Unlock()

	cancel()
	<-done

	c.mu.Lock()
	defer c.mu.Unlock()
	final := strings.Join(c.fragments, " ")
	c.fragments = nil
	c.listening = false
	c.listenCancel = nil
	c.listenDone = nil
	return final
}
