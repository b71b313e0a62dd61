// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema migrations.

# Opening a Database

Open selects the driver from the dialect, applies sqlite pragmas, verifies
the connection, and runs pending migrations:

	conn, err := db.Open(cfg.DatabaseURL, cfg.DatabaseType)
	if err != nil {
		log.Fatal(err)
	}

Supported dialects are DialectSQLite (default deployment, single file) and
DialectPostgres. A ping failure is reported as ErrStorageUnavailable.

# Migrations

Schema changes are applied as ordered, versioned steps recorded in the
schema_migrations table. Each step runs in a transaction together with its
version record, so a failed migration leaves the schema at the previous
version. Adding a column is an explicit ALTER TABLE in a new migration,
never a re-issued CREATE TABLE IF NOT EXISTS (which silently no-ops on an
existing table).

Current history:

 1. pods, uploads, interactions
 2. live session columns on pods (live_upload_id, live_host_name)
 3. retros, insights, insight_comments, insight_votes

# Tables

	pods 1──* uploads 1──* interactions
	retros 1──* insights 1──* insight_comments
	insights 1──* insight_votes   (UNIQUE per insight_id, user_id)

Foreign keys cascade on delete. Binary columns are BLOB on sqlite and BYTEA
on postgres; auto-increment ids are AUTOINCREMENT / BIGSERIAL per dialect.
*/
package db
