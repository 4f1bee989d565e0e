package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	// error kinds, every feature error wraps exactly one of these
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")

	ErrParseUUID     = fmt.Errorf("%w: failed to parse UUID", ErrValidation)
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

const (
	OrderLatest = "latest"
	OrderOldest = "oldest"
)
