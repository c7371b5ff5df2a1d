package service

import "errors"

var (
	// ErrInvalidCredentials is deliberately uniform: it never reveals
	// whether the username or the password was wrong, or which table
	// was consulted.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateCredential rejects a registration whose username OR
	// email collides with an existing record in the same table.
	ErrDuplicateCredential = errors.New("account already exists with this username or email")

	// ErrSessionInvalid means the session token no longer maps to a
	// live principal; the caller must re-authenticate.
	ErrSessionInvalid = errors.New("session is no longer valid")

	// ErrInvalidTransition rejects a status change the state machine
	// defines no edge for.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrConflictingTransition means the compare-and-set write matched
	// zero rows: another request moved the record first.
	ErrConflictingTransition = errors.New("status changed concurrently")

	// ErrUnauthorized rejects an action by a principal that does not
	// own the record.
	ErrUnauthorized = errors.New("not allowed to act on this record")

	// ErrInvalidInput rejects a request missing required fields or
	// carrying malformed values.
	ErrInvalidInput = errors.New("missing or invalid input")
)
