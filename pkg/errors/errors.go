package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Stage   string `json:"stage,omitempty"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func NewAt(code Code, stage, message string) error {
	return &AppError{Code: code, Message: message, Stage: stage}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func WrapAt(code Code, stage, message string, cause error) error {
	return &AppError{Code: code, Message: message, Stage: stage, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) error {
	return New(CodeAlreadyExists, msg)
}

func Unauthorized(msg string) error {
	return New(CodeUnauthenticated, msg)
}

func Forbidden(msg string) error {
	return New(CodePermissionDenied, msg)
}

func Internal(msg string) error {
	return New(CodeInternal, msg)
}

func FailedPrecondition(msg string) error {
	return New(CodeFailedPrecondition, msg)
}

// Accessors used by the delivery layer to translate an error into a
// wire response without type-switching at every call site.

func CodeOf(err error) Code {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// MessageOf returns the classified message without the cause chain.
func MessageOf(err error) string {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

func StageOf(err error) string {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Stage
	}
	return ""
}

// DetailOf returns the underlying cause message, if any. Raw provider
// and database messages surface to the client only through this field.
func DetailOf(err error) string {
	var ae *AppError
	if stderrors.As(err, &ae) && ae.Cause != nil {
		return ae.Cause.Error()
	}
	return ""
}
