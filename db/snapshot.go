// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// LoadSnapshot reads the stored state document. Returns nil with no error
// when no snapshot has been written yet.
func LoadSnapshot(db *sql.DB) ([]byte, error) {
	var payload []byte
	err := db.QueryRow(`SELECT payload FROM snapshot WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return payload, nil
}

// SaveSnapshot upserts the state document. The write is synchronous: when
// this returns nil the snapshot is durable at this system's durability tier.
func SaveSnapshot(db *sql.DB, payload []byte) error {
	_, err := db.Exec(`
		INSERT INTO snapshot (id, payload, saved_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at
	`, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
