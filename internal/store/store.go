// Package store provides the durable snapshot backend and its SQLite implementation.
package store

import "context"

// Snapshot keys, one per entity collection.
const (
	KeyMessages  = "messages"
	KeyReminders = "reminders"
	KeyMemories  = "memories"
	KeyProfile   = "profile"
)

// Keys lists every snapshot key the application uses.
var Keys = []string{KeyMessages, KeyReminders, KeyMemories, KeyProfile}

// Backend loads and saves raw collection snapshots by key.
type Backend interface {
	// Load returns the raw payload for key. A missing key reports ok=false
	// with a nil error.
	Load(ctx context.Context, key string) (raw string, ok bool, err error)

	// Save replaces the payload stored under key.
	Save(ctx context.Context, key, raw string) error

	// Close releases the backend.
	Close() error
}

var (
	_ Backend = (*SQLiteStore)(nil)
	_ Backend = (*MemoryStore)(nil)
)
