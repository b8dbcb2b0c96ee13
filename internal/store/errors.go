package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes store-level failures.
type ErrorCode string

const (
	// ErrCodeConfig indicates a required default could not be resolved
	// (e.g., no home directory available and no explicit path given).
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeStore indicates the backing file could not be opened, read,
	// or written (permissions, corruption, disk full, lock timeout).
	ErrCodeStore ErrorCode = "STORE_ERROR"

	// ErrCodeSchema indicates schema creation or migration failed.
	ErrCodeSchema ErrorCode = "SCHEMA_ERROR"

	// ErrCodeInternal indicates an invariant violation - a logic bug,
	// not a user error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is a structured store-level error. An absent counter is NOT an
// Error: reads surface absence as a valid result, distinguished from zero.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause (optional).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates an Error for a failed default resolution.
func NewConfigError(message string, err error) *Error {
	return &Error{Code: ErrCodeConfig, Message: message, Err: err}
}

// NewStoreError creates an Error for a backing-store failure.
func NewStoreError(message string, err error) *Error {
	return &Error{Code: ErrCodeStore, Message: message, Err: err}
}

// NewSchemaError creates an Error for a failed schema creation or migration.
func NewSchemaError(message string, err error) *Error {
	return &Error{Code: ErrCodeSchema, Message: message, Err: err}
}

// NewInternalError creates an Error for an invariant violation.
func NewInternalError(message string) *Error {
	return &Error{Code: ErrCodeInternal, Message: message}
}

// IsConfig returns true for config-resolution errors.
// Uses errors.As to handle wrapped errors.
func IsConfig(err error) bool {
	return hasCode(err, ErrCodeConfig)
}

// IsStore returns true for backing-store errors.
// Uses errors.As to handle wrapped errors.
func IsStore(err error) bool {
	return hasCode(err, ErrCodeStore)
}

// IsSchema returns true for schema errors.
// Uses errors.As to handle wrapped errors.
func IsSchema(err error) bool {
	return hasCode(err, ErrCodeSchema)
}

// IsInternal returns true for invariant-violation errors.
// Uses errors.As to handle wrapped errors.
func IsInternal(err error) bool {
	return hasCode(err, ErrCodeInternal)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
