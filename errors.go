package repospec

import "errors"

var (
	// ErrUnsupported reports that a provider declines an operation it cannot
	// support. Providers wrap it so errors.Is recognizes the condition
	// across implementations.
	ErrUnsupported = errors.New("operation not supported by this provider")
)
