// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// Employee-related errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailAlreadyExists = errors.New("employee with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet requirements")

	// Subunit-related errors
	ErrSubunitNotFound   = errors.New("subunit not found")
	ErrLeaderNotFound    = errors.New("subunit leader not found")
	ErrSubunitNameTaken  = errors.New("subunit with this name already exists")
	ErrSubunitEmailTaken = errors.New("subunit with this email already exists")
	ErrSubunitRequired   = errors.New("subunit id is required for subunit-scoped feeds")

	// Post-related errors
	ErrPostNotFound  = errors.New("post not found")
	ErrNothingToEdit = errors.New("at least one field must be provided to edit")
	ErrInvalidStatus = errors.New("invalid post status")
	ErrInvalidPeriod = errors.New("invalid statistics period")

	// Attachment-related errors
	ErrAttachmentNotFound = errors.New("attachment not found")
)
