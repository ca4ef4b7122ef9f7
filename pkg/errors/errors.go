package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeExtract represents link-extraction errors
	ErrorTypeExtract ErrorType = "extract"
	// ErrorTypeCorpus represents corpus-scanning errors
	ErrorTypeCorpus ErrorType = "corpus"
	// ErrorTypeConsolidate represents repair-application errors
	ErrorTypeConsolidate ErrorType = "consolidate"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Extraction Errors

// ErrFileUnreadable is returned when a corpus document cannot be read
type ErrFileUnreadable struct {
	*BaseError
	Path string
}

func NewFileUnreadable(path string, err error) *ErrFileUnreadable {
	return &ErrFileUnreadable{
		BaseError: NewBaseError(ErrorTypeExtract, fmt.Sprintf("cannot read document: %s", path), err),
		Path:      path,
	}
}

// ErrMalformedDocument is returned when rendered HTML cannot be parsed
type ErrMalformedDocument struct {
	*BaseError
	Path string
}

func NewMalformedDocument(path string, err error) *ErrMalformedDocument {
	return &ErrMalformedDocument{
		BaseError: NewBaseError(ErrorTypeExtract, fmt.Sprintf("malformed document: %s", path), err),
		Path:      path,
	}
}

// Corpus Errors

// ErrCorpusRootMissing is returned when the corpus root directory does not exist
type ErrCorpusRootMissing struct {
	*BaseError
	Root string
}

func NewCorpusRootMissing(root string, err error) *ErrCorpusRootMissing {
	return &ErrCorpusRootMissing{
		BaseError: NewBaseError(ErrorTypeCorpus, fmt.Sprintf("corpus root not found: %s", root), err),
		Root:      root,
	}
}

// Consolidation Errors

// ErrRepairNotApplicable is returned when a repair result cannot be applied to a document
type ErrRepairNotApplicable struct {
	*BaseError
	File string
}

func NewRepairNotApplicable(file, reason string) *ErrRepairNotApplicable {
	return &ErrRepairNotApplicable{
		BaseError: NewBaseError(ErrorTypeConsolidate, fmt.Sprintf("repair not applicable to %s: %s", file, reason), nil),
		File:      file,
	}
}
