package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// User-facing failure messages. Transport and network failures are collapsed
// into one generic message; the distinction stays on LookupError.
const (
	MessageNotFound = "No results. Try a different word."
	MessageGeneric  = "Something went wrong. Please try again."
)

// ErrorKind classifies a failed lookup.
type ErrorKind string

const (
	KindNotFound  ErrorKind = "NOT_FOUND"
	KindTransport ErrorKind = "TRANSPORT"
	KindNetwork   ErrorKind = "NETWORK"
)

func (k ErrorKind) String() string { return string(k) }

// LookupError is returned by the lexicon client for every failed lookup.
type LookupError struct {
	Kind       ErrorKind
	Word       string
	StatusCode int // set for KindTransport
	Err        error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("lookup %q: %s", e.Word, ErrNotFound)
	case KindTransport:
		return fmt.Sprintf("lookup %q: unexpected status %d", e.Word, e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("lookup %q: network: %v", e.Word, e.Err)
		}
		return fmt.Sprintf("lookup %q: network failure", e.Word)
	}
}

// Unwrap exposes ErrNotFound for not-found lookups and the cause otherwise.
func (e *LookupError) Unwrap() error {
	if e.Kind == KindNotFound {
		return ErrNotFound
	}
	return e.Err
}

// NewNotFoundError creates a LookupError for a word the source does not know.
func NewNotFoundError(word string) *LookupError {
	return &LookupError{Kind: KindNotFound, Word: word}
}

// NewTransportError creates a LookupError for a non-success HTTP status.
func NewTransportError(word string, status int) *LookupError {
	return &LookupError{Kind: KindTransport, Word: word, StatusCode: status}
}

// NewNetworkError creates a LookupError for unreachable or malformed responses.
func NewNetworkError(word string, err error) *LookupError {
	return &LookupError{Kind: KindNetwork, Word: word, Err: err}
}

// KindOf returns the ErrorKind of err. Errors that are not LookupErrors are
// treated as network failures unless they wrap ErrNotFound.
func KindOf(err error) ErrorKind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	return KindNetwork
}

// FailureMessage maps a lookup error to the message shown to the user.
func FailureMessage(err error) string {
	if KindOf(err) == KindNotFound {
		return MessageNotFound
	}
	return MessageGeneric
}

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
