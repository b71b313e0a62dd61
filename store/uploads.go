// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/retro-studio/models"
)

// CreateUpload inserts a new artifact. The bytes are stored as-is; no size
// or MIME validation happens here. Uploads are immutable once created.
func (s *Store) CreateUpload(podID, userName, uploadType string, fileData []byte, fileName string) (models.Upload, error) {
	if userName == "" {
		return models.Upload{}, ErrEmptyUserName
	}

	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM pods WHERE id = $1)`, podID).Scan(&exists)
	if err != nil {
		return models.Upload{}, fmt.Errorf("checking pod: %w", err)
	}
	if !exists {
		return models.Upload{}, ErrNotFound
	}

	up := models.Upload{
		ID:         uuid.NewString(),
		PodID:      podID,
		UserName:   userName,
		UploadType: uploadType,
		FileData:   fileData,
		FileName:   fileName,
		Timestamp:  stamp(),
	}

	_, err = s.db.Exec(`
		INSERT INTO uploads (id, pod_id, user_name, upload_type, file_data, file_name, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, up.ID, up.PodID, up.UserName, up.UploadType, up.FileData, up.FileName, up.Timestamp)
	if err != nil {
		return models.Upload{}, fmt.Errorf("inserting upload: %w", err)
	}

	return up, nil
}

// GetUpload returns the upload with the given id, or ErrNotFound.
func (s *Store) GetUpload(id string) (models.Upload, error) {
	var up models.Upload
	err := s.db.QueryRow(`
		SELECT id, pod_id, user_name, upload_type, file_data, file_name, timestamp
		FROM uploads
		WHERE id = $1
	`, id).Scan(&up.ID, &up.PodID, &up.UserName, &up.UploadType, &up.FileData, &up.FileName, &up.Timestamp)
	if err == sql.ErrNoRows {
		return models.Upload{}, ErrNotFound
	}
	if err != nil {
		return models.Upload{}, fmt.Errorf("querying upload: %w", err)
	}
	return up, nil
}

// ListUploads returns a pod's uploads ordered by timestamp, ascending by
// default, descending when requested by the caller.
func (s *Store) ListUploads(podID string, descending bool) ([]models.Upload, error) {
	order := "ASC"
	if descending {
		order = "DESC"
	}

	rows, err := s.db.Query(`
		SELECT id, pod_id, user_name, upload_type, file_data, file_name, timestamp
		FROM uploads
		WHERE pod_id = $1
		ORDER BY timestamp `+order, podID)
	if err != nil {
		return nil, fmt.Errorf("querying uploads: %w", err)
	}
	defer rows.Close()

	uploads := []models.Upload{}
	for rows.Next() {
		var up models.Upload
		if err := rows.Scan(&up.ID, &up.PodID, &up.UserName, &up.UploadType, &up.FileData, &up.FileName, &up.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning upload: %w", err)
		}
		uploads = append(uploads, up)
	}
	return uploads, rows.Err()
}
