package exception

import "fmt"

type DocumentNotFoundError struct {
	*AppError
	DocumentId string
}

func NewDocumentNotFoundError(documentId string) *DocumentNotFoundError {
	return &DocumentNotFoundError{
		AppError: &AppError{
			Code:    "DOCUMENT_NOT_FOUND",
			Message: fmt.Sprintf("document with id '%s' does not exist", documentId),
		},
		DocumentId: documentId,
	}
}

// ChangeOutOfRangeError is returned when a change does not fit the document
// it is applied to.
type ChangeOutOfRangeError struct {
	*AppError
	DocumentLength int
	ChangeLength   int
}

func NewChangeOutOfRangeError(documentLength, changeLength int) *ChangeOutOfRangeError {
	return &ChangeOutOfRangeError{
		AppError: &AppError{
			Code:    "CHANGE_OUT_OF_RANGE",
			Message: fmt.Sprintf("change spans %d positions but the document has %d", changeLength, documentLength),
		},
		DocumentLength: documentLength,
		ChangeLength:   changeLength,
	}
}

type DocumentTooLargeError struct {
	*AppError
	Limit int
}

func NewDocumentTooLargeError(length, limit int) *DocumentTooLargeError {
	return &DocumentTooLargeError{
		AppError: &AppError{
			Code:    "DOCUMENT_TOO_LARGE",
			Message: fmt.Sprintf("document length %d exceeds the limit of %d", length, limit),
		},
		Limit: limit,
	}
}
