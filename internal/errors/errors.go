// Package errors provides structured error handling for prodmatch.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (catalog and synonym sources)
//   - 4XX: Query validation errors
//   - 5XX: Internal errors
package errors

import (
	"fmt"
	"strings"
)

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates catalog and synonym source I/O errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates query validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeCatalogOpen    = "ERR_201_CATALOG_OPEN"
	ErrCodeCatalogQuery   = "ERR_202_CATALOG_QUERY"
	ErrCodeCatalogCorrupt = "ERR_203_CATALOG_CORRUPT"
	ErrCodeSynonymsRead   = "ERR_204_SYNONYMS_READ"
	ErrCodeSynonymsParse  = "ERR_205_SYNONYMS_PARSE"

	// Validation errors (400-499)
	ErrCodeQueryInvalid = "ERR_401_QUERY_INVALID"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// Error is the structured error type for prodmatch. It carries a stable
// code for matching plus the wrapped cause for error chain support.
type Error struct {
	// Code is the unique error code (e.g., "ERR_201_CATALOG_OPEN").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, ...), derived from Code.
	Category Category

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new Error with the given code and message.
func New(code string, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Newf creates a new Error with a formatted message.
func Newf(code string, cause error, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), cause)
}

// Wrap creates an Error from an existing error. Returns nil when err is
// nil so callers can wrap unconditionally.
func Wrap(code string, err error) *Error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// categoryFromCode derives the category from the numeric code block.
func categoryFromCode(code string) Category {
	switch {
	case strings.HasPrefix(code, "ERR_1"):
		return CategoryConfig
	case strings.HasPrefix(code, "ERR_2"):
		return CategoryIO
	case strings.HasPrefix(code, "ERR_4"):
		return CategoryValidation
	default:
		return CategoryInternal
	}
}
