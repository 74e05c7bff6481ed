package common

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entry does not exist or belongs to a
// different owner. Callers must not be able to tell which.
var ErrNotFound = errors.New("not found")

// ValidationError rejects user-correctable input synchronously.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthError means the owner has no usable remote credential. Terminal for
// the job that hit it; never retried.
type AuthError struct {
	OwnerID uint64
	Reason  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("remote credential for owner %d: %s", e.OwnerID, e.Reason)
}

// RemoteError wraps a transient failure from the remote platform. Retryable
// at the dispatcher/caller layer.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
