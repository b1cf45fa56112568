package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string     `json:"db_path"`
	DBSizeBytes int64      `json:"db_size_bytes"`
	Keys        []KeyStats `json:"keys"`
}

// KeyStats holds per-snapshot size and freshness.
type KeyStats struct {
	Key          string `json:"key"`
	PayloadBytes int    `json:"payload_bytes"`
	UpdatedAt    string `json:"updated_at"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, LENGTH(CAST(payload AS BLOB)), updated_at FROM snapshots ORDER BY key`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ks KeyStats
		if err := rows.Scan(&ks.Key, &ks.PayloadBytes, &ks.UpdatedAt); err != nil {
			return st, err
		}
		st.Keys = append(st.Keys, ks)
	}

	return st, rows.Err()
}
