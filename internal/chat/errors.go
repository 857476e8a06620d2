package chat

import "errors"

var (
	ErrMissingData      = errors.New("userID, documentID and message are required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrGenerationFailed = errors.New("model generation failed")
	ErrPersistFailed    = errors.New("failed to persist chat turn")
)
