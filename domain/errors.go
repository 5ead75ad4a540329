package domain

import (
	"errors"
	"fmt"
)

// Error codes of ClientError.
const (
	CodeInvalidAddress            = "invalid_address"
	CodeInvalidServiceDescription = "invalid_service_description"
	CodeEmptyResponse             = "empty_response"
	CodeTransportFailure          = "transport_failure"
	CodeUnknownMethod             = "unknown_method"
	CodeInvalidArgument           = "invalid_argument"
)

// ClientError is the error type of the client construction layer and of the call sites.
// Code is one of the Code* constants; Message is a human-readable description; Inner is the
// underlying cause (e.g. a url parse error or a gRPC status error) and is returned by Unwrap,
// so status.Code(err) still reports the gRPC code of a transport failure.
type ClientError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

func (e ClientError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e ClientError) Unwrap() error { return e.Inner }

// HasCode reports whether err is (or wraps) a ClientError with the given code.
func HasCode(err error, code string) bool {
	var e ClientError
	return errors.As(err, &e) && e.Code == code
}

func NewInvalidAddressError(message string, inner error) ClientError {
	return ClientError{Code: CodeInvalidAddress, Message: message, Inner: inner}
}

func IsInvalidAddress(err error) bool { return HasCode(err, CodeInvalidAddress) }

func NewInvalidServiceDescriptionError(message string, inner error) ClientError {
	return ClientError{Code: CodeInvalidServiceDescription, Message: message, Inner: inner}
}

func IsInvalidServiceDescription(err error) bool { return HasCode(err, CodeInvalidServiceDescription) }

func NewEmptyResponseError(message string, inner error) ClientError {
	return ClientError{Code: CodeEmptyResponse, Message: message, Inner: inner}
}

func IsEmptyResponse(err error) bool { return HasCode(err, CodeEmptyResponse) }

func NewTransportFailureError(message string, inner error) ClientError {
	return ClientError{Code: CodeTransportFailure, Message: message, Inner: inner}
}

func IsTransportFailure(err error) bool { return HasCode(err, CodeTransportFailure) }

func NewUnknownMethodError(message string, inner error) ClientError {
	return ClientError{Code: CodeUnknownMethod, Message: message, Inner: inner}
}

func IsUnknownMethod(err error) bool { return HasCode(err, CodeUnknownMethod) }

func NewInvalidArgumentError(message string, inner error) ClientError {
	return ClientError{Code: CodeInvalidArgument, Message: message, Inner: inner}
}

func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }
