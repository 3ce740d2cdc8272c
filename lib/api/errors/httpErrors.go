package errors

import (
	"errors"

	"github.com/ether/delta-go/lib/exception"
	"github.com/ether/delta-go/lib/history"
	"github.com/go-playground/validator/v10"
)

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

func NewMissingParamError(paramName string) Error {
	return Error{
		Message: "Missing parameter: " + paramName,
		Error:   400,
	}
}

var DocumentNotFoundError = Error{
	Message: "Document not found",
	Error:   404,
}

var NothingToUndoError = Error{
	Message: "Nothing to undo",
	Error:   409,
}

var NothingToRedoError = Error{
	Message: "Nothing to redo",
	Error:   409,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

// FromValidation reports the first failing field of a request body.
func FromValidation(err error) Error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		var fieldError = validationErrors[0]
		if fieldError.Tag() == "required" {
			return NewMissingParamError(fieldError.Field())
		}
		return NewInvalidParamError(fieldError.Field())
	}
	return InvalidRequestError
}

// FromError maps domain errors onto API errors. The bool is false for
// errors that have no client facing mapping.
func FromError(err error) (Error, bool) {
	var (
		invalidDelta *exception.InvalidDeltaError
		notFound     *exception.DocumentNotFoundError
		outOfRange   *exception.ChangeOutOfRangeError
		tooLarge     *exception.DocumentTooLargeError
	)
	switch {
	case errors.As(err, &invalidDelta):
		return Error{Message: "Invalid delta: " + invalidDelta.Message, Error: 400}, true
	case errors.As(err, &notFound):
		return DocumentNotFoundError, true
	case errors.As(err, &outOfRange):
		return Error{Message: outOfRange.Message, Error: 422}, true
	case errors.As(err, &tooLarge):
		return Error{Message: tooLarge.Message, Error: 422}, true
	case errors.Is(err, history.ErrNothingToUndo):
		return NothingToUndoError, true
	case errors.Is(err, history.ErrNothingToRedo):
		return NothingToRedoError, true
	}
	return InternalServerError, false
}
