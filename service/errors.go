package service

import "errors"

var (
	// ErrContentNotFound is returned when a concrete content identifier does
	// not resolve to a stored row.
	ErrContentNotFound = errors.New("content not found")

	// ErrEmptyFile is returned when a create call carries no file bytes.
	ErrEmptyFile = errors.New("file payload is required")
)
