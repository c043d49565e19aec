package models

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrReservedName       = errors.New("username is reserved")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
