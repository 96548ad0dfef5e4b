package database

import "errors"

// Sentinel errors returned by the store. Handlers translate these into the
// client-visible {success:false, message} envelope.
var (
	// ErrUsernameTaken is returned when registering an already-used
	// username (case-sensitive exact match).
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is wrapped with detail for bad task input (empty
	// text, day outside the month).
	ErrValidation = errors.New("invalid input")

	// ErrTaskNotFound is returned when no task exists at the requested
	// (id, day) coordinate for the requesting user. Tasks owned by other
	// users are indistinguishable from absent ones.
	ErrTaskNotFound = errors.New("task not found")
)
