package wire

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes transport and protocol failures.
type ErrorCode int

const (
	ErrorUnknown ErrorCode = iota
	ErrorConnection
	ErrorTimeout
	ErrorSerialization
	ErrorProtocol
	ErrorNotConnected
	ErrorInvalidConfig
)

// String returns the string representation of an ErrorCode.
func (e ErrorCode) String() string {
	switch e {
	case ErrorConnection:
		return "connection_error"
	case ErrorTimeout:
		return "timeout"
	case ErrorSerialization:
		return "serialization_error"
	case ErrorProtocol:
		return "protocol_error"
	case ErrorNotConnected:
		return "not_connected"
	case ErrorInvalidConfig:
		return "invalid_config"
	default:
		return "unknown"
	}
}

// WireError is a structured transport error with code and context.
type WireError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *WireError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Unwrap support.
func (e *WireError) Unwrap() error {
	return e.Wrapped
}

// Is matches WireErrors by code.
func (e *WireError) Is(target error) bool {
	t, ok := target.(*WireError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a WireError with the given code and message.
func NewError(code ErrorCode, message string) *WireError {
	return &WireError{Code: code, Message: message}
}

// WrapError wraps an existing error with a WireError.
func WrapError(code ErrorCode, message string, err error) *WireError {
	return &WireError{Code: code, Message: message, Wrapped: err}
}

// FromProtocolError converts a server Error frame to a WireError.
func FromProtocolError(e *Error) *WireError {
	if e == nil {
		return nil
	}
	return &WireError{Code: ErrorProtocol, Message: e.Code + ": " + e.Msg}
}

// IsConnectionError checks if an error is connection-related.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var we *WireError
	if !errors.As(err, &we) {
		return false
	}
	return we.Code == ErrorConnection || we.Code == ErrorTimeout || we.Code == ErrorNotConnected
}
