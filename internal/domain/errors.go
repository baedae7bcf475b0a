package domain

import "errors"

// ErrNotFound is returned when a preset id or session does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input names something the form does not
// have (e.g. an unknown field). Field values themselves are never validated.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
