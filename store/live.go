// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/retro-studio/models"
)

// GoLive designates an upload as currently being presented to the pod and
// records the member who started the session. The upload must belong to the
// pod; a mismatch returns ErrCrossPodReference. If another member already
// went live, the last writer wins.
func (s *Store) GoLive(podID, uploadID, hostName string) error {
	if hostName == "" {
		return ErrEmptyUserName
	}

	var uploadPodID string
	err := s.db.QueryRow(`SELECT pod_id FROM uploads WHERE id = $1`, uploadID).Scan(&uploadPodID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("querying upload: %w", err)
	}
	if uploadPodID != podID {
		return ErrCrossPodReference
	}

	res, err := s.db.Exec(`
		UPDATE pods
		SET live_upload_id = $1, live_host_name = $2
		WHERE id = $3
	`, uploadID, hostName, podID)
	if err != nil {
		return fmt.Errorf("starting live session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("starting live session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// EndSession clears the pod's live session. Any member may end a session
// explicitly; ending an already-idle pod is a no-op.
func (s *Store) EndSession(podID string) error {
	res, err := s.db.Exec(`
		UPDATE pods
		SET live_upload_id = NULL, live_host_name = NULL
		WHERE id = $1
	`, podID)
	if err != nil {
		return fmt.Errorf("ending live session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ending live session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// EndSessionOnLogout clears the live session only when the leaving member
// is the one who started it. A non-host logging out leaves the session
// running. The ownership check and the clear are a single statement.
func (s *Store) EndSessionOnLogout(podID, userName string) error {
	_, err := s.db.Exec(`
		UPDATE pods
		SET live_upload_id = NULL, live_host_name = NULL
		WHERE id = $1 AND live_host_name = $2
	`, podID, userName)
	if err != nil {
		return fmt.Errorf("ending live session on logout: %w", err)
	}
	return nil
}

// LiveUpload returns the upload currently being presented in a pod and the
// host who started the session, or a nil upload when the pod is idle.
func (s *Store) LiveUpload(podID string) (*models.Upload, string, error) {
	pod, err := s.GetPod(podID)
	if err != nil {
		return nil, "", err
	}
	if pod.LiveUploadID == nil {
		return nil, "", nil
	}

	up, err := s.GetUpload(*pod.LiveUploadID)
	if err != nil {
		return nil, "", err
	}

	host := ""
	if pod.LiveHostName != nil {
		host = *pod.LiveHostName
	}
	return &up, host, nil
}
