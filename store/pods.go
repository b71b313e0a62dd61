// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/retro-studio/models"
)

// ListPods returns all pods ordered by name. No filter, no pagination.
func (s *Store) ListPods() ([]models.Pod, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, live_upload_id, live_host_name
		FROM pods
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying pods: %w", err)
	}
	defer rows.Close()

	pods := []models.Pod{}
	for rows.Next() {
		var p models.Pod
		var desc sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &desc, &p.LiveUploadID, &p.LiveHostName); err != nil {
			return nil, fmt.Errorf("scanning pod: %w", err)
		}
		p.Description = desc.String
		pods = append(pods, p)
	}
	return pods, rows.Err()
}

// CreatePod inserts a new pod. Returns ErrDuplicateName if the name is
// already taken; pod names are globally unique.
func (s *Store) CreatePod(name, description string) (models.Pod, error) {
	pod := models.Pod{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}

	_, err := s.db.Exec(`
		INSERT INTO pods (id, name, description)
		VALUES ($1, $2, $3)
	`, pod.ID, pod.Name, pod.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Pod{}, ErrDuplicateName
		}
		return models.Pod{}, fmt.Errorf("inserting pod: %w", err)
	}

	return pod, nil
}

// GetPod returns the pod with the given id, or ErrNotFound.
func (s *Store) GetPod(id string) (models.Pod, error) {
	var p models.Pod
	var desc sql.NullString
	err := s.db.QueryRow(`
		SELECT id, name, description, live_upload_id, live_host_name
		FROM pods
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &desc, &p.LiveUploadID, &p.LiveHostName)
	if err == sql.ErrNoRows {
		return models.Pod{}, ErrNotFound
	}
	if err != nil {
		return models.Pod{}, fmt.Errorf("querying pod: %w", err)
	}
	p.Description = desc.String
	return p, nil
}
