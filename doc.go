// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Retro Studio API server.

Retro Studio is a small team-collaboration service: members join a named
pod, upload artifacts (videos, slide decks, recordings), and react, vote,
and comment on each other's work. A member can push one upload into a live
review session visible to the whole pod, and a summary view aggregates the
feedback per upload. A parallel insight-review model (retros, insights,
one-vote-per-member insight votes) covers structured retrospectives.

# Starting the Server

The server runs against a local sqlite file with no arguments:

	go run .

Or against postgres:

	go run . -t postgres -d "postgres://..."

# Configuration

Optional settings (flag / env):

  - PORT (-p): Server port (default: 3319)
  - DATABASE_URL (-d): Connection string or sqlite path
    (default: retro_studio.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - VOTE_POLICY (-vote-policy): allow-multiple or dedupe-per-user
    (default: allow-multiple)

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: all reads/writes, vote upsert, live-session transitions
  - handlers: HTTP request handlers (pods, uploads, interactions, live,
    insights)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Connections and versioned schema migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
