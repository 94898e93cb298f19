package client

import "errors"

// Sentinels mapped from the server's status codes. Match with errors.Is.
var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("record belongs to another account")
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("resource already exists")
	ErrBadRequest   = errors.New("request rejected by server")
)
