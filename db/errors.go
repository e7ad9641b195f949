package db

import "errors"

// Recoverable domain errors, surfaced to the user as flash messages or as
// 403/404 responses by the handlers.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateCafeName = errors.New("cafe name already registered")
	ErrAlreadyCommented  = errors.New("user already commented on this cafe")
	ErrCafeNotFound      = errors.New("cafe not found")
)
