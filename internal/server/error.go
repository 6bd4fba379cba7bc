package server

import "fmt"

var (
	ErrInvalidDelimiter = fmt.Errorf("delimiter must be exactly one character")

	ErrInvalidMaxSuffix = func(maxSuffix int) error {
		return fmt.Errorf("max suffix '%d' must not be negative", maxSuffix)
	}

	ErrInvalidParam = func(param, value string) error {
		return fmt.Errorf("invalid value '%s' for '%s'", value, param)
	}

	ErrMissingParam = func(param string) error {
		return fmt.Errorf("missing required parameter '%s'", param)
	}

	ErrReserveExhausted = fmt.Errorf("failed to find an unreserved name after %d attempts", reserveAttempts)
)
