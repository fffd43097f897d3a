package domain

import "errors"

// ErrNotFound is returned when a referenced entity does not resolve in its
// store. Callers check it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrInvalid marks validation failures caught before any write reaches the
// backing store.
var ErrInvalid = errors.New("invalid")
