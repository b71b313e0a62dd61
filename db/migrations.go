// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "database/sql"

// Migration represents a single schema migration step.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *sql.Tx, dialect string) error
}

// blobType returns the binary column type for the dialect.
func blobType(dialect string) string {
	if dialect == DialectPostgres {
		return "BYTEA"
	}
	return "BLOB"
}

// serialPK returns an auto-incrementing integer primary key column for the
// dialect. Used where arrival order must be reconstructable from the id.
func serialPK(dialect string) string {
	if dialect == DialectPostgres {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// migrations is the ordered list of all schema migrations.
// Append new migrations to the end with incrementing Version numbers.
var migrations = []Migration{
	{
		Version:     1,
		Description: "pods, uploads, interactions",
		Up: func(tx *sql.Tx, dialect string) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS pods (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT
);

CREATE TABLE IF NOT EXISTS uploads (
    id TEXT PRIMARY KEY,
    pod_id TEXT NOT NULL REFERENCES pods(id) ON DELETE CASCADE,
    user_name TEXT NOT NULL,
    upload_type TEXT NOT NULL,
    file_data ` + blobType(dialect) + `,
    file_name TEXT NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_uploads_pod_id ON uploads(pod_id);

CREATE TABLE IF NOT EXISTS interactions (
    id ` + serialPK(dialect) + `,
    upload_id TEXT NOT NULL REFERENCES uploads(id) ON DELETE CASCADE,
    user_name TEXT NOT NULL,
    interaction_type TEXT NOT NULL,
    content TEXT,
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interactions_upload_id ON interactions(upload_id);
`)
			return err
		},
	},
	{
		Version:     2,
		Description: "live session columns on pods",
		Up: func(tx *sql.Tx, dialect string) error {
			// One column per statement; sqlite rejects multi-column ALTER.
			if _, err := tx.Exec(`ALTER TABLE pods ADD COLUMN live_upload_id TEXT`); err != nil {
				return err
			}
			_, err := tx.Exec(`ALTER TABLE pods ADD COLUMN live_host_name TEXT`)
			return err
		},
	},
	{
		Version:     3,
		Description: "retros, insights, insight comments and votes",
		Up: func(tx *sql.Tx, dialect string) error {
			_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS retros (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    host TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS insights (
    id TEXT PRIMARY KEY,
    retro_id TEXT NOT NULL REFERENCES retros(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    explanation TEXT,
    confidence TEXT NOT NULL CHECK (confidence IN ('Low', 'Medium', 'High')),
    next_steps TEXT,
    status TEXT NOT NULL DEFAULT 'open',
    media ` + blobType(dialect) + `
);

CREATE INDEX IF NOT EXISTS idx_insights_retro_id ON insights(retro_id);

CREATE TABLE IF NOT EXISTS insight_comments (
    id ` + serialPK(dialect) + `,
    insight_id TEXT NOT NULL REFERENCES insights(id) ON DELETE CASCADE,
    author TEXT NOT NULL,
    comment TEXT NOT NULL,
    timestamp TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_insight_comments_insight_id ON insight_comments(insight_id);

CREATE TABLE IF NOT EXISTS insight_votes (
    id ` + serialPK(dialect) + `,
    insight_id TEXT NOT NULL REFERENCES insights(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL,
    depth INTEGER NOT NULL CHECK (depth >= 1 AND depth <= 10),
    usefulness TEXT NOT NULL,
    decision TEXT NOT NULL CHECK (decision IN ('Good', 'Kill')),
    UNIQUE (insight_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_insight_votes_insight_id ON insight_votes(insight_id);
`)
			return err
		},
	},
}
