package storage

import "errors"

// Common client storage errors
var (
	// ErrNotFound indicates that no value exists under the requested key
	// (never written, expired or unreadable)
	ErrNotFound = errors.New("value not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
