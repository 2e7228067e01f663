package domain

import "errors"

var (
	// ErrAuthRequired is returned by the entity fetch collaborator when credentials
	// are missing or rejected; it aborts the whole cycle
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyPayload is returned when the entity fetch produced no usable records
	ErrEmptyPayload = errors.New("empty entity payload")

	// ErrCycleInProgress is returned when a cycle trigger races an already-running cycle
	ErrCycleInProgress = errors.New("snapshot cycle already in progress")

	// ErrCategoryNotFound is returned when an operation references an untracked category
	ErrCategoryNotFound = errors.New("category not tracked")
)
