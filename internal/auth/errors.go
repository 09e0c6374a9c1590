package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already exists")

	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrExpiredToken   = errors.New("token expired")
)
