package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrLexiconUnavailable = errors.New("lexicon unavailable")
)
