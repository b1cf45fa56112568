package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/rcliao/moderk/internal/model"
)

var (
	// ErrNotFound is returned when an edit targets an unknown id.
	ErrNotFound = errors.New("not found")
	// ErrExists is returned when a create reuses a stored id.
	ErrExists = errors.New("already exists")
)

const defaultCategoryColor = "primary-500"

// CreateReminder fills in id and defaults, validates and stores r.
func (a *Assistant) CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	if r.ID == "" {
		r.ID = model.NewID()
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Priority == "" {
		r.Priority = model.PriorityMedium
	}
	if r.CategoryColor == "" {
		r.CategoryColor = defaultCategoryColor
	}
	if err := r.Validate(); err != nil {
		return model.Reminder{}, err
	}
	added, err := a.InsertReminder(ctx, r)
	if err != nil {
		return r, err
	}
	if !added {
		return model.Reminder{}, ErrExists
	}
	return r, nil
}

// EditReminder applies p to the reminder with id after checking the result.
func (a *Assistant) EditReminder(ctx context.Context, id string, p model.ReminderPatch) (model.Reminder, error) {
	r, ok := a.Reminder(id)
	if !ok {
		return model.Reminder{}, ErrNotFound
	}
	p.Apply(&r)
	if err := r.Validate(); err != nil {
		return model.Reminder{}, err
	}
	if err := a.UpdateReminder(ctx, id, p); err != nil {
		return r, err
	}
	return r, nil
}

// CreateMemory fills in id and defaults, validates and stores m.
func (a *Assistant) CreateMemory(ctx context.Context, m model.Memory) (model.Memory, error) {
	if m.ID == "" {
		m.ID = model.NewID()
	}
	m.Title = strings.TrimSpace(m.Title)
	m.Tags = model.UniqueStrings(m.Tags)
	m.People = model.UniqueStrings(m.People)
	if err := m.Validate(); err != nil {
		return model.Memory{}, err
	}
	added, err := a.InsertMemory(ctx, m)
	if err != nil {
		return m, err
	}
	if !added {
		return model.Memory{}, ErrExists
	}
	return m, nil
}

// EditMemory applies p to the memory with id after checking the result.
func (a *Assistant) EditMemory(ctx context.Context, id string, p model.MemoryPatch) (model.Memory, error) {
	m, ok := a.Memory(id)
	if !ok {
		return model.Memory{}, ErrNotFound
	}
	if p.Tags != nil {
		tags := model.UniqueStrings(*p.Tags)
		p.Tags = &tags
	}
	if p.People != nil {
		people := model.UniqueStrings(*p.People)
		p.People = &people
	}
	p.Apply(&m)
	if err := m.Validate(); err != nil {
		return model.Memory{}, err
	}
	if err := a.UpdateMemory(ctx, id, p); err != nil {
		return m, err
	}
	return m, nil
}

// EditProfile merges p into the profile after checking the result.
func (a *Assistant) EditProfile(ctx context.Context, p model.ProfilePatch) (model.Profile, error) {
	next := a.Profile()
	p.Apply(&next)
	if err := next.Validate(); err != nil {
		return model.Profile{}, err
	}
	if err := a.UpdateProfile(ctx, p); err != nil {
		return next, err
	}
	return next, nil
}
