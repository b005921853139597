package config

import "errors"

var (
	// ErrInsufficientArguments is returned when fewer than two positional
	// arguments are supplied, or when the file path is empty.
	ErrInsufficientArguments = errors.New("not enough arguments")
	// ErrMissingOptionValue is returned when an option that takes a value is
	// the last argument.
	ErrMissingOptionValue = errors.New("option requires a value")
	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
