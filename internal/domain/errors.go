package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoSuchDirectory = errors.New("no such directory")
	ErrNoSuchFile      = errors.New("no such file")
	ErrIsADirectory    = errors.New("is a directory")
	ErrAuthDenied      = errors.New("invalid credentials")
	ErrRateLimited     = errors.New("too many requests")
)

// ValidationError is a user-correctable input failure from the record
// editor. It never reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError represents a failure from the document store
type StoreError struct {
	Op         string // Operation: "list", "create", "update", "delete"
	Collection string // "messages" or "projects"
	ID         string // Optional: specific record ID
	Err        error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("store %s %s [%s]: %v", e.Op, e.Collection, e.ID, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NotifyError represents a failure from the outbound notification relay.
// Callers treat delivery as best-effort and only log these.
type NotifyError struct {
	Op  string
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify %s: %v", e.Op, e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}
