// Package state holds the application store: the single owner of messages,
// reminders, memories and the user profile.
//
// A Store is created once with Open and passed to every consumer. Open
// hydrates all collections from the durable backend before returning, so no
// caller ever observes pre-hydration defaults. Every mutator updates the
// in-memory snapshot and writes the full affected collection back to the
// backend before it returns.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/store"
)

// Phase is the store's one-shot initialization state.
type Phase int

const (
	Uninitialized Phase = iota
	Hydrating
	Ready
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Hydrating:
		return "hydrating"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Store is the application state container. All methods are safe for
// concurrent use; mutators are serialized.
type Store struct {
	backend store.Backend
	log     *slog.Logger

	mu        sync.Mutex
	phase     Phase
	messages  *model.Collection[model.Message]
	reminders *model.Collection[model.Reminder]
	memories  *model.Collection[model.Memory]
	profile   model.Profile
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recovered decode and persist failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Open hydrates a Store from backend. The four collections are loaded in
// parallel. A malformed payload is replaced by the collection's default and
// logged; only backend read failures are returned.
func Open(ctx context.Context, backend store.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		log:     slog.Default(),
		phase:   Uninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Hydrating

	var (
		messages  []model.Message
		reminders []model.Reminder
		memories  []model.Memory
		profile   = model.DefaultProfile()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.hydrate(gctx, store.KeyMessages, &messages, func() { messages = nil }) })
	g.Go(func() error { return s.hydrate(gctx, store.KeyReminders, &reminders, func() { reminders = nil }) })
	g.Go(func() error { return s.hydrate(gctx, store.KeyMemories, &memories, func() { memories = nil }) })
	g.Go(func() error {
		return s.hydrate(gctx, store.KeyProfile, &profile, func() { profile = model.DefaultProfile() })
	})
	if err := g.Wait(); err != nil {
		s.phase = Uninitialized
		return nil, fmt.Errorf("hydrate: %w", err)
	}

	s.messages = model.NewCollection(messages)
	s.reminders = model.NewCollection(reminders)
	s.memories = model.NewCollection(memories)
	s.profile = profile
	s.phase = Ready

	s.log.Debug("store hydrated",
		slog.Int("messages", s.messages.Len()),
		slog.Int("reminders", s.reminders.Len()),
		slog.Int("memories", s.memories.Len()))

	return s, nil
}

// hydrate decodes the payload stored under key into dst. Absent keys leave
// dst untouched; undecodable payloads call reset.
func (s *Store) hydrate(ctx context.Context, key string, dst any, reset func()) error {
	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("discarding malformed snapshot",
			slog.String("key", key), slog.String("error", err.Error()))
		reset()
	}
	return nil
}

// persist writes v under key. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Save(ctx, key, string(b)); err != nil {
		s.log.Error("persist snapshot failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// Phase reports the initialization state.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}
