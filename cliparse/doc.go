// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Connection string or sqlite file path
    (default: retro_studio.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - VotePolicy: "allow-multiple" or "dedupe-per-user"
    (default: allow-multiple)

# CLI Flags

	-p            Server port
	-d            Database URL or sqlite file path
	-t            Database type
	-vote-policy  Repeat-vote policy

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	VOTE_POLICY   → -vote-policy

CLI flags take precedence over environment variables. A .env file, if
present, is loaded by main before parsing.

# Validation

ParseFlags returns an error for a non-numeric PORT or an unknown vote
policy. Everything else has a working default, so the server starts with no
arguments against a local sqlite file.
*/
package cliparse
