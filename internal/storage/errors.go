package storage

import "errors"

var (
	// ErrNotFound is returned when an update or delete targets an id that is
	// not present in the store. The original silently no-opped here; callers
	// need to tell "absent" apart from "nothing happened".
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned by Register when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Authenticate for an unknown email
	// or a wrong password. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
