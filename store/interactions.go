// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/retro-studio/models"
)

// AddInteraction records a reaction, vote, or comment against an upload.
//
// An empty userName returns ErrEmptyUserName without inserting anything;
// the caller re-prompts. Comments always append. Votes and reactions follow
// the configured policy: under PolicyAllowMultiple every submission adds a
// row, under PolicyDedupePerUser the latest submission per user per upload
// overwrites the previous one.
func (s *Store) AddInteraction(uploadID, userName, kind, content string) error {
	if userName == "" {
		return ErrEmptyUserName
	}

	switch kind {
	case models.KindReaction, models.KindVote, models.KindComment:
	default:
		return fmt.Errorf("unknown interaction kind %q", kind)
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM uploads WHERE id = $1)`, uploadID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking upload: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if kind != models.KindComment && s.votePolicy == models.PolicyDedupePerUser {
		return s.upsertInteraction(uploadID, userName, kind, content)
	}

	_, err = s.db.Exec(`
		INSERT INTO interactions (upload_id, user_name, interaction_type, content, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`, uploadID, userName, kind, content, stamp())
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

// upsertInteraction replaces a user's previous vote or reaction on an
// upload, keeping the original row id.
func (s *Store) upsertInteraction(uploadID, userName, kind, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin interaction upsert: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(`
		SELECT id FROM interactions
		WHERE upload_id = $1 AND user_name = $2 AND interaction_type = $3
	`, uploadID, userName, kind).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = tx.Exec(`
			INSERT INTO interactions (upload_id, user_name, interaction_type, content, timestamp)
			VALUES ($1, $2, $3, $4, $5)
		`, uploadID, userName, kind, content, stamp())
		if err != nil {
			return fmt.Errorf("inserting interaction: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("querying interaction: %w", err)
	} else {
		_, err = tx.Exec(`
			UPDATE interactions
			SET content = $1, timestamp = $2
			WHERE id = $3
		`, content, stamp(), existingID)
		if err != nil {
			return fmt.Errorf("updating interaction: %w", err)
		}
	}

	return tx.Commit()
}

// GetInteractions returns an upload's interactions in arrival order,
// optionally filtered by kind. An empty kind returns everything.
func (s *Store) GetInteractions(uploadID, kind string) ([]models.Interaction, error) {
	query := `
		SELECT id, upload_id, user_name, interaction_type, content, timestamp
		FROM interactions
		WHERE upload_id = $1
	`
	args := []any{uploadID}
	if kind != "" {
		query += ` AND interaction_type = $2`
		args = append(args, kind)
	}
	query += ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	interactions := []models.Interaction{}
	for rows.Next() {
		var in models.Interaction
		var content sql.NullString
		if err := rows.Scan(&in.ID, &in.UploadID, &in.UserName, &in.Kind, &content, &in.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		in.Content = content.String
		interactions = append(interactions, in)
	}
	return interactions, rows.Err()
}

// VoteTally counts an upload's votes grouped by content ("Keep" vs "Kill").
// Every row counts; under PolicyAllowMultiple repeat voters are counted
// each time they voted.
func (s *Store) VoteTally(uploadID string) (map[string]int, error) {
	return s.tally(uploadID, models.KindVote)
}

// ReactionTally counts an upload's reactions grouped by emoji.
func (s *Store) ReactionTally(uploadID string) (map[string]int, error) {
	return s.tally(uploadID, models.KindReaction)
}

func (s *Store) tally(uploadID, kind string) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT content, COUNT(*)
		FROM interactions
		WHERE upload_id = $1 AND interaction_type = $2
		GROUP BY content
	`, uploadID, kind)
	if err != nil {
		return nil, fmt.Errorf("tallying %s: %w", kind, err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var content string
		var n int
		if err := rows.Scan(&content, &n); err != nil {
			return nil, fmt.Errorf("scanning tally: %w", err)
		}
		counts[content] = n
	}
	return counts, rows.Err()
}

// CommentSummary returns the distinct comment bodies for an upload in
// first-seen order. This feeds the "AI summary", which is plain
// concatenation, not real summarization.
func (s *Store) CommentSummary(uploadID string) ([]string, error) {
	comments, err := s.GetInteractions(uploadID, models.KindComment)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	unique := []string{}
	for _, c := range comments {
		if seen[c.Content] {
			continue
		}
		seen[c.Content] = true
		unique = append(unique, c.Content)
	}
	return unique, nil
}
