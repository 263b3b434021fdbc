package restbind

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// Raised locally, before any transport activity.
	CodeMissingRequiredParameter ErrorCode = "missing_required_parameter"
	CodeInvalidArgument          ErrorCode = "invalid_argument"
	CodeUnknownOperation         ErrorCode = "unknown_operation"
	CodeUnresolvedPathParameter  ErrorCode = "unresolved_path_parameter"

	// Reported by the remote API or the transport.
	CodeUnauthenticated    ErrorCode = "unauthenticated"
	CodePermissionDenied   ErrorCode = "permission_denied"
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodeFailedPrecondition ErrorCode = "failed_precondition"
	CodeResourceExhausted  ErrorCode = "resource_exhausted"
	CodeCanceled           ErrorCode = "canceled"
	CodeInternal           ErrorCode = "internal"
	CodeNotImplemented     ErrorCode = "not_implemented"
	CodeUnavailable        ErrorCode = "unavailable"
	CodeDeadlineExceeded   ErrorCode = "deadline_exceeded"
)

// Error is a locally raised binding error.
type Error struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode implements [Coder].
func (e *Error) ErrorCode() ErrorCode {
	return e.Code
}

// NewError creates a new binding error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new binding error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// WithDetails returns a new Error with the provided map merged into details.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: merged,
	}
}

// Coder is implemented by errors that carry an ErrorCode, such as *Error and
// *APIError.
type Coder interface {
	ErrorCode() ErrorCode
}

// ErrorCodeOf extracts the ErrorCode from an error chain. It understands
// [Coder] implementations, validator errors and context errors. Other non-nil
// errors report CodeInternal, and nil reports the empty code.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return AsError(err).Code
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && ErrorCodeOf(err) == code
}

// AsError maps any error to an *Error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var bindErr *Error
	if errors.As(err, &bindErr) {
		return bindErr
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return NewError(apiErr.ErrorCode(), apiErr.Message).WithDetail("status", apiErr.Status)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(CodeDeadlineExceeded, "deadline exceeded")
	}

	if errors.Is(err, context.Canceled) {
		return NewError(CodeCanceled, "context canceled")
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		return fromValidationErrors(valErrs)
	}

	var coder Coder
	if errors.As(err, &coder) {
		return NewError(coder.ErrorCode(), err.Error())
	}

	// Handle multi-errors (errors.Join): the first error decides the code.
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs := u.Unwrap()
		if len(errs) > 0 {
			first := AsError(errs[0])
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return &Error{
				Code:    first.Code,
				Message: strings.Join(msgs, "; "),
				Details: first.Details,
			}
		}
	}

	return NewError(CodeInternal, err.Error())
}

func fromValidationErrors(valErrs validator.ValidationErrors) *Error {
	details := make(map[string]any)
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Namespace()] = msg
		messages = append(messages, ve.Namespace()+": "+msg)
	}
	return &Error{
		Code:    CodeInvalidArgument,
		Message: strings.Join(messages, "; "),
		Details: details,
	}
}

// CodeForHTTPStatus maps an HTTP response status to an ErrorCode.
func CodeForHTTPStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusPreconditionFailed:
		return CodeFailedPrecondition
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case 499:
		return CodeCanceled
	case http.StatusNotImplemented:
		return CodeNotImplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return CodeUnavailable
	case http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	}
	if status >= 400 && status < 500 {
		return CodeInvalidArgument
	}
	return CodeInternal
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
