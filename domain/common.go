package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageFailedBodyRequest   = "failed to process request"
	MessageInternalServerError = "Internal server error"

	ErrParseUUID    = errors.New("failed to parse UUID")
	ErrUnauthorized = errors.New("login required")
	ErrForbidden    = errors.New("admin only")
)
