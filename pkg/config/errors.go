package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the target struct.
	ErrParsingConfig = errors.New("config: failed to parse environment into config")

	// ErrReadingEnvFile is returned when a .env file cannot be read.
	ErrReadingEnvFile = errors.New("config: failed to read env file")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
