package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeConfiguration    = "CONFIGURATION_ERROR"
	ErrCodeRetrieval        = "RETRIEVAL_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
)

// Validation errors
var (
	ErrEmptyQuery         = NewDomainError(ErrCodeValidation, "query text must not be blank")
	ErrInvalidTopK        = NewDomainError(ErrCodeValidation, "top_k must be a positive integer")
	ErrInvalidCategory    = NewDomainError(ErrCodeValidation, "invalid category name")
	ErrInvalidSubcategory = NewDomainError(ErrCodeValidation, "invalid subcategory name")
)

// Configuration errors
var (
	ErrKnowledgeDirUnavailable = NewDomainError(ErrCodeConfiguration, "knowledge base directory cannot be created")
)

// Retrieval errors
var (
	ErrIndexRebuildFailed = NewDomainError(ErrCodeRetrieval, "vector index rebuild failed")
)

// Not found errors
var (
	ErrArchiveNotFound = NewDomainError(ErrCodeNotFound, "project archive not found")
)
