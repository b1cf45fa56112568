package state

import (
	"context"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/store"
)

// Reminders returns all reminders in insertion order.
func (s *Store) Reminders() []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.All()
}

// Reminder returns the reminder with the given id.
func (s *Store) Reminder(id string) (model.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.Get(id)
}

// AddReminder appends r. A reminder whose id is already present is ignored.
func (s *Store) AddReminder(ctx context.Context, r model.Reminder) error {
	_, err := s.InsertReminder(ctx, r)
	return err
}

// InsertReminder is AddReminder reporting whether r was added.
func (s *Store) InsertReminder(ctx context.Context, r model.Reminder) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.reminders.Add(r) {
		return false, nil
	}
	return true, s.persistReminders(ctx)
}

// RemoveReminder deletes the reminder with the given id, if present.
func (s *Store) RemoveReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.reminders.Remove(id) {
		return nil
	}
	return s.persistReminders(ctx)
}

// UpdateReminder merges p into the reminder with the given id, if present.
func (s *Store) UpdateReminder(ctx context.Context, id string, p model.ReminderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.reminders.Update(id, p.Apply) {
		return nil
	}
	return s.persistReminders(ctx)
}

// ToggleReminder flips IsCompleted on the reminder with the given id and
// returns the result. ok is false when id is unknown.
func (s *Store) ToggleReminder(ctx context.Context, id string) (r model.Reminder, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	toggled := s.reminders.Update(id, func(rem *model.Reminder) {
		rem.IsCompleted = !rem.IsCompleted
	})
	if !toggled {
		return model.Reminder{}, false, nil
	}
	r, _ = s.reminders.Get(id)
	return r, true, s.persistReminders(ctx)
}

func (s *Store) persistReminders(ctx context.Context) error {
	return s.persist(ctx, store.KeyReminders, s.reminders.All())
}
