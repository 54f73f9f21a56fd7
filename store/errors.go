// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Error categories. Callers classify failures with errors.Is against these
// sentinels; the router translates them to HTTP status codes.
var (
	// ErrValidation marks malformed or missing input. The caller must
	// correct the request before retrying.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to a game or session that does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation that violates a lifecycle or
	// uniqueness invariant: duplicate active session, double vote,
	// vote after close, close after close. Not retryable; the caller
	// must re-fetch current state.
	ErrConflict = errors.New("conflict")
)

// domainError pairs a category sentinel with a human-readable message.
type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

func validationErr(msg string) error { return &domainError{kind: ErrValidation, msg: msg} }
func notFoundErr(msg string) error   { return &domainError{kind: ErrNotFound, msg: msg} }
func conflictErr(msg string) error   { return &domainError{kind: ErrConflict, msg: msg} }
