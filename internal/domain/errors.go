package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when the record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned on unique key collisions.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict is returned when a record changed between read and write.
	ErrConflict = errors.New("conflict")
)
