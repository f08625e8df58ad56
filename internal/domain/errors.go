package domain

import "errors"

var (
	// ErrProvider marks failures classified by the completion provider
	// (authentication, quota, malformed request, network).
	ErrProvider = errors.New("provider error")

	// ErrBadArgument indicates command arguments that could not be converted.
	ErrBadArgument = errors.New("bad argument")

	// ErrUnknownCommand indicates a prefixed message naming no registered command.
	ErrUnknownCommand = errors.New("unknown command")
)
