package errors

import "errors"

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrSourceUnavailable     = errors.New("flight source unavailable")
	ErrUnknownGroundTimeMode = errors.New("unknown ground time mode")
)
