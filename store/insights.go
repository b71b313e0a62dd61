// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/retro-studio/models"
)

// CreateRetro inserts a new retro session record.
func (s *Store) CreateRetro(title, date, host string) (models.Retro, error) {
	r := models.Retro{
		ID:    uuid.NewString(),
		Title: title,
		Date:  date,
		Host:  host,
	}
	_, err := s.db.Exec(`
		INSERT INTO retros (id, title, date, host)
		VALUES ($1, $2, $3, $4)
	`, r.ID, r.Title, r.Date, r.Host)
	if err != nil {
		return models.Retro{}, fmt.Errorf("inserting retro: %w", err)
	}
	return r, nil
}

// ListRetros returns all retros ordered by date, newest first.
func (s *Store) ListRetros() ([]models.Retro, error) {
	rows, err := s.db.Query(`
		SELECT id, title, date, host
		FROM retros
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying retros: %w", err)
	}
	defer rows.Close()

	retros := []models.Retro{}
	for rows.Next() {
		var r models.Retro
		if err := rows.Scan(&r.ID, &r.Title, &r.Date, &r.Host); err != nil {
			return nil, fmt.Errorf("scanning retro: %w", err)
		}
		retros = append(retros, r)
	}
	return retros, rows.Err()
}

// CreateInsight inserts a finding presented in a retro. Confidence must be
// one of the three defined levels.
func (s *Store) CreateInsight(retroID, title, explanation, confidence, nextSteps string, media []byte) (models.Insight, error) {
	switch confidence {
	case models.ConfidenceLow, models.ConfidenceMedium, models.ConfidenceHigh:
	default:
		return models.Insight{}, fmt.Errorf("invalid confidence %q", confidence)
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM retros WHERE id = $1)`, retroID).Scan(&exists)
	if err != nil {
		return models.Insight{}, fmt.Errorf("checking retro: %w", err)
	}
	if !exists {
		return models.Insight{}, ErrNotFound
	}

	in := models.Insight{
		ID:          uuid.NewString(),
		RetroID:     retroID,
		Title:       title,
		Explanation: explanation,
		Confidence:  confidence,
		NextSteps:   nextSteps,
		Status:      "open",
		Media:       media,
	}
	_, err = s.db.Exec(`
		INSERT INTO insights (id, retro_id, title, explanation, confidence, next_steps, status, media)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, in.ID, in.RetroID, in.Title, in.Explanation, in.Confidence, in.NextSteps, in.Status, in.Media)
	if err != nil {
		return models.Insight{}, fmt.Errorf("inserting insight: %w", err)
	}
	return in, nil
}

// ListInsights returns a retro's insights.
func (s *Store) ListInsights(retroID string) ([]models.Insight, error) {
	rows, err := s.db.Query(`
		SELECT id, retro_id, title, explanation, confidence, next_steps, status, media
		FROM insights
		WHERE retro_id = $1
		ORDER BY title
	`, retroID)
	if err != nil {
		return nil, fmt.Errorf("querying insights: %w", err)
	}
	defer rows.Close()

	insights := []models.Insight{}
	for rows.Next() {
		var in models.Insight
		var explanation, nextSteps sql.NullString
		if err := rows.Scan(&in.ID, &in.RetroID, &in.Title, &explanation, &in.Confidence, &nextSteps, &in.Status, &in.Media); err != nil {
			return nil, fmt.Errorf("scanning insight: %w", err)
		}
		in.Explanation = explanation.String
		in.NextSteps = nextSteps.String
		insights = append(insights, in)
	}
	return insights, rows.Err()
}

// AddInsightComment appends a comment to an insight. An empty author
// returns ErrEmptyUserName without inserting.
func (s *Store) AddInsightComment(insightID, author, comment string) error {
	if author == "" {
		return ErrEmptyUserName
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM insights WHERE id = $1)`, insightID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking insight: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	_, err = s.db.Exec(`
		INSERT INTO insight_comments (insight_id, author, comment, timestamp)
		VALUES ($1, $2, $3, $4)
	`, insightID, author, comment, stamp())
	if err != nil {
		return fmt.Errorf("inserting insight comment: %w", err)
	}
	return nil
}

// ListInsightComments returns an insight's comments in arrival order.
func (s *Store) ListInsightComments(insightID string) ([]models.InsightComment, error) {
	rows, err := s.db.Query(`
		SELECT id, insight_id, author, comment, timestamp
		FROM insight_comments
		WHERE insight_id = $1
		ORDER BY id
	`, insightID)
	if err != nil {
		return nil, fmt.Errorf("querying insight comments: %w", err)
	}
	defer rows.Close()

	comments := []models.InsightComment{}
	for rows.Next() {
		var c models.InsightComment
		if err := rows.Scan(&c.ID, &c.InsightID, &c.Author, &c.Comment, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning insight comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// UpsertVote records a member's vote on an insight, guaranteeing at most one
// row per (insight_id, user_id). A revote overwrites depth, usefulness, and
// decision in place, keeping the row's id. The check-then-act runs inside a
// transaction and the table's unique constraint backs it against concurrent
// submissions from the same user.
func (s *Store) UpsertVote(insightID, userID string, depth int, usefulness, decision string) error {
	if userID == "" {
		return ErrEmptyUserName
	}
	if depth < 1 || depth > 10 {
		return fmt.Errorf("depth must be between 1 and 10, got %d", depth)
	}
	switch usefulness {
	case models.UsefulnessNot, models.UsefulnessSomewhat, models.UsefulnessVery:
	default:
		return fmt.Errorf("invalid usefulness %q", usefulness)
	}
	switch decision {
	case models.DecisionGood, models.DecisionKill:
	default:
		return fmt.Errorf("invalid decision %q", decision)
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM insights WHERE id = $1)`, insightID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking insight: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin vote upsert: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow(`
		SELECT id FROM insight_votes
		WHERE insight_id = $1 AND user_id = $2
	`, insightID, userID).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = tx.Exec(`
			INSERT INTO insight_votes (insight_id, user_id, depth, usefulness, decision)
			VALUES ($1, $2, $3, $4, $5)
		`, insightID, userID, depth, usefulness, decision)
		if err != nil {
			return fmt.Errorf("inserting vote: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("querying vote: %w", err)
	} else {
		_, err = tx.Exec(`
			UPDATE insight_votes
			SET depth = $1, usefulness = $2, decision = $3
			WHERE id = $4
		`, depth, usefulness, decision, existingID)
		if err != nil {
			return fmt.Errorf("updating vote: %w", err)
		}
	}

	return tx.Commit()
}

// GetVote returns a member's vote on an insight, or ErrNotFound.
func (s *Store) GetVote(insightID, userID string) (models.InsightVote, error) {
	var v models.InsightVote
	err := s.db.QueryRow(`
		SELECT id, insight_id, user_id, depth, usefulness, decision
		FROM insight_votes
		WHERE insight_id = $1 AND user_id = $2
	`, insightID, userID).Scan(&v.ID, &v.InsightID, &v.UserID, &v.Depth, &v.Usefulness, &v.Decision)
	if err == sql.ErrNoRows {
		return models.InsightVote{}, ErrNotFound
	}
	if err != nil {
		return models.InsightVote{}, fmt.Errorf("querying vote: %w", err)
	}
	return v, nil
}

// VoteBreakdown counts an insight's votes grouped by decision.
func (s *Store) VoteBreakdown(insightID string) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT decision, COUNT(*)
		FROM insight_votes
		WHERE insight_id = $1
		GROUP BY decision
	`, insightID)
	if err != nil {
		return nil, fmt.Errorf("counting votes: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var decision string
		var n int
		if err := rows.Scan(&decision, &n); err != nil {
			return nil, fmt.Errorf("scanning vote count: %w", err)
		}
		counts[decision] = n
	}
	return counts, rows.Err()
}
