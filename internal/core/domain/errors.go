package domain

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrDuplicateName      = errors.New("nome already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownRole        = errors.New("role not recognized")
)
