package domain

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid voicemail status")
	ErrInvalidTransition = errors.New("invalid voicemail status transition")
	ErrNotFound          = errors.New("not found")
	ErrInvalidToken      = errors.New("invalid clinic token")
)
