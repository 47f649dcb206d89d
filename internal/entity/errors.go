package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrWrongSoftwareType = errors.New("wrong software type")
	ErrAlreadySigned     = errors.New("agreement already signed")
	ErrAmountExceeded    = errors.New("amount exceeded")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
)
