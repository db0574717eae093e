package entity

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyPaid      = errors.New("already paid")
	ErrQuotaExceeded    = errors.New("invoice quota exceeded")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidSignature = errors.New("invalid signature")
)
