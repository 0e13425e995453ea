package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrEmailTaken     = errors.New("email already in use")
	ErrInvalidRole    = errors.New("invalid role")
)
