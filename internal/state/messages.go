package state

import (
	"context"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/store"
)

// Messages returns the conversation in insertion order.
func (s *Store) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.All()
}

// AddMessage appends m to the conversation. A message whose id is already
// present is ignored.
func (s *Store) AddMessage(ctx context.Context, m model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.messages.Add(m) {
		return nil
	}
	return s.persist(ctx, store.KeyMessages, s.messages.All())
}

// MarkMessageRead sets IsRead on the message with the given id.
func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	s.messages.Update(id, func(m *model.Message) {
		changed = !m.IsRead
		m.IsRead = true
	})
	if !changed {
		return nil
	}
	return s.persist(ctx, store.KeyMessages, s.messages.All())
}

// UnreadCount returns the number of messages not yet shown to the user.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, m := range s.messages.All() {
		if !m.IsRead {
			n++
		}
	}
	return n
}
