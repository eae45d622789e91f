package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the
// store. Every Store operation uses it uniformly for missing targets.
var ErrNotFound = errors.New("not found")

// ErrNoActor is returned by operations that require an acting user
// (comment authorship) when the context carries none.
var ErrNoActor = errors.New("no acting user")
