package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrLocked        = errors.New("locked")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// CodedError is a business error with a stable machine-readable code.
// Kind is one of the sentinels above and decides the transport status.
type CodedError struct {
	Code    string
	Message string
	Kind    error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error { return e.Kind }

// Is matches two coded errors by code, so wrapped copies still compare equal.
func (e *CodedError) Is(target error) bool {
	var t *CodedError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

func newCoded(code, message string, kind error) *CodedError {
	return &CodedError{Code: code, Message: message, Kind: kind}
}

// Content submission errors.
var (
	ErrContentAlreadySubmitted = newCoded("CONTENT_ALREADY_SUMMITED", "content is already submitted", ErrValidation)
	ErrContentTitleRequired    = newCoded("CONTENT_TITLE_REQUIRED", "content title is required", ErrValidation)
	ErrContentSlugRequired     = newCoded("CONTENT_SLUG_REQUIRED", "content slug is required", ErrValidation)
	ErrContentContentRequired  = newCoded("CONTENT_CONTENT_REQUIRED", "content body is required", ErrValidation)
	ErrNoEligibleContent       = newCoded("NO_ELIGIBLE_CONTENT_FOUND", "no eligible content found", ErrNotFound)
	ErrContentCannotRetract    = newCoded("CONTENT_CANNOT_BE_RETRACTED", "content cannot be retracted", ErrValidation)
	ErrContentNotEditable      = newCoded("CONTENT_NOT_EDITABLE", "content can only be edited while editing or rejected", ErrValidation)
	ErrContentNotPending       = newCoded("CONTENT_NOT_PENDING", "content is no longer pending review", ErrConflict)
)

// Workflow errors.
var (
	ErrActivityLocked            = newCoded("ACTIVITY_IS_LOCKED", "activity is locked by another operator", ErrLocked)
	ErrActivityNotFound          = newCoded("ACTIVITY_NOT_FOUND", "activity not found", ErrNotFound)
	ErrActivityInvalidTransition = newCoded("ACTIVITY_INVALID_TRANSITION", "activity state does not allow this action", ErrValidation)
	ErrActivityNotInProcess      = newCoded("ACTIVITY_NOT_IN_PROCESS", "activity does not belong to process", ErrNotFound)
	ErrProcessNotFound           = newCoded("PROCESS_NOT_FOUND", "process not found", ErrNotFound)
	ErrProcessClosed             = newCoded("PROCESS_IS_CLOSED", "process is no longer pending", ErrConflict)
)
