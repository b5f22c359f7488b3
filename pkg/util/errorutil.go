package util

import (
	"errors"
	"fmt"
)

// Error codes for the expected, caller-recoverable failure taxonomy.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// DomainError standardizes application errors. Fields carries one message per
// failing field for validation failures.
type DomainError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, fields map[string]string) *DomainError {
	return &DomainError{Code: code, Message: message, Fields: fields}
}

func NewValidationError(fields map[string]string) error {
	return NewDomainError(CodeValidationFailed, "validation failed", fields)
}

func NewInvalidCredentials() error {
	return NewDomainError(CodeInvalidCredentials, "invalid email or password", nil)
}

func NewEmailExists() error {
	return NewDomainError(CodeEmailExists, "user with this email already exists", nil)
}

func NewNotFound(resource string) error {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:    CodeInternalError,
		Message: "internal error",
		Err:     err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{Code: CodeInternalError, Message: "internal error", Err: err}
}

// CodeOf extracts the taxonomy code, or empty string for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	return ToDomainError(err).Code
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// FieldErrors returns the field→message map of a validation failure, or nil.
func FieldErrors(err error) map[string]string {
	de := ToDomainError(err)
	if de == nil || de.Code != CodeValidationFailed {
		return nil
	}
	return de.Fields
}
