package exception

import "fmt"

// InvalidDeltaError rejects a malformed op sequence at the decoding boundary.
type InvalidDeltaError struct {
	*AppError
	Index int
}

func NewInvalidDeltaError(index int, reason string, cause error) *InvalidDeltaError {
	return &InvalidDeltaError{
		AppError: &AppError{
			Code:    "INVALID_DELTA",
			Message: fmt.Sprintf("op %d: %s", index, reason),
			Cause:   cause,
		},
		Index: index,
	}
}
