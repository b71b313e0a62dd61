// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/retro-studio/models"
)

// Store holds all read and write access to persistent state. It is the sole
// integration point between the HTTP boundary and the database.
type Store struct {
	db         *sql.DB
	votePolicy string
}

// New creates a Store. votePolicy controls repeated pod-style votes and
// reactions from the same user: PolicyAllowMultiple counts every row,
// PolicyDedupePerUser keeps only the latest per user per upload.
func New(db *sql.DB, votePolicy string) *Store {
	if votePolicy == "" {
		votePolicy = models.PolicyAllowMultiple
	}
	return &Store{db: db, votePolicy: votePolicy}
}

// stamp returns the current time at minute resolution.
func stamp() string {
	return time.Now().Format(models.TimestampLayout)
}
