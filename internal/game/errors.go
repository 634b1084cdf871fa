package game

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNullReference   = errors.New("null reference")
)
