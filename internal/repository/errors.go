package repository

import "errors"

var (
	ErrNotFound    = errors.New("repository: not found")
	ErrUnavailable = errors.New("repository: store unavailable")
)
