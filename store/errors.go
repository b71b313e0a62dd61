// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the referenced pod, upload, retro, or insight
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName indicates a pod name is already taken.
	ErrDuplicateName = errors.New("duplicate pod name")

	// ErrEmptyUserName indicates a submission without an identified user.
	// The operation is a no-op; callers re-prompt rather than crash.
	ErrEmptyUserName = errors.New("user name is empty")

	// ErrCrossPodReference indicates an attempt to present an upload that
	// belongs to a different pod.
	ErrCrossPodReference = errors.New("upload belongs to a different pod")
)

// isUniqueViolation reports whether err is a unique-constraint rejection
// from either supported driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // modernc sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // pq
}
