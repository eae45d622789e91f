package service

import "errors"

// ErrInvalid marks a request rejected by input validation. Handlers
// map it to 400; everything else falls through as a server error.
var ErrInvalid = errors.New("invalid input")
