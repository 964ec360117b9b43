package store

import "errors"

// Common errors
var (
	ErrStoreUnavailable = errors.New("content store unavailable")
	ErrWriteRejected    = errors.New("content store rejected write")
	ErrNoWriteToken     = errors.New("content store write token not configured")
)

// apiErrorBody is the error envelope returned by the store API
type apiErrorBody struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

func (b apiErrorBody) describe() string {
	if b.Error.Description != "" {
		return b.Error.Description
	}
	return b.Message
}
