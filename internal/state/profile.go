package state

import (
	"context"

	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/store"
)

// Profile returns a copy of the user profile.
func (s *Store) Profile() model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// UpdateProfile merges p into the profile and persists it.
func (s *Store) UpdateProfile(ctx context.Context, p model.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Apply(&s.profile)
	return s.persist(ctx, store.KeyProfile, s.profile)
}
