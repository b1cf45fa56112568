package state

import (
	"context"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/store"
)

// Memories returns all memories in insertion order.
func (s *Store) Memories() []model.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memories.All()
}

// Memory returns the memory with the given id.
func (s *Store) Memory(id string) (model.Memory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memories.Get(id)
}

// AddMemory appends m. A memory whose id is already present is ignored.
func (s *Store) AddMemory(ctx context.Context, m model.Memory) error {
	_, err := s.InsertMemory(ctx, m)
	return err
}

// InsertMemory is AddMemory reporting whether m was added.
func (s *Store) InsertMemory(ctx context.Context, m model.Memory) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memories.Add(m) {
		return false, nil
	}
	return true, s.persistMemories(ctx)
}

// RemoveMemory deletes the memory with the given id, if present.
func (s *Store) RemoveMemory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memories.Remove(id) {
		return nil
	}
	return s.persistMemories(ctx)
}

// UpdateMemory merges p into the memory with the given id, if present.
func (s *Store) UpdateMemory(ctx context.Context, id string, p model.MemoryPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memories.Update(id, p.Apply) {
		return nil
	}
	return s.persistMemories(ctx)
}

// AddMemoryTag appends tag to the memory unless it is already tagged.
func (s *Store) AddMemoryTag(ctx context.Context, id, tag string) error {
	return s.appendToMemory(ctx, id, tag, func(m *model.Memory) *[]string { return &m.Tags })
}

// AddMemoryPerson appends person to the memory unless already listed.
func (s *Store) AddMemoryPerson(ctx context.Context, id, person string) error {
	return s.appendToMemory(ctx, id, person, func(m *model.Memory) *[]string { return &m.People })
}

func (s *Store) appendToMemory(ctx context.Context, id, v string, field func(*model.Memory) *[]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := false
	s.memories.Update(id, func(m *model.Memory) {
		list := field(m)
		*list, added = model.AppendUnique(*list, v)
	})
	if !added {
		return nil
	}
	return s.persistMemories(ctx)
}

func (s *Store) persistMemories(ctx context.Context) error {
	return s.persist(ctx, store.KeyMemories, s.memories.All())
}
