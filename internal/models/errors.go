package models

import "errors"

var (
	// ErrNotFound signals an empty result set: no record matched, or the
	// collection holds nothing at all. Callers decide the status-code policy.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail signals a violation of the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")
)
