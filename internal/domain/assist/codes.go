// Package assist holds the core logic around the two AI features: input
// validation and preprocessing for the natural-language parser, the repair
// pass that coerces model output into a valid todo draft, and the statistics
// digest that feeds the analysis prompt. Everything here is deterministic;
// talking to the model is an adapter concern.
package assist

import "net/http"

// Code is the stable machine-readable error code carried on AI endpoint
// error responses.
type Code string

const (
	// Request validation codes, returned before any model call.
	CodeMissingInput         Code = "MISSING_INPUT"
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeInvalidRequestFormat Code = "INVALID_REQUEST_FORMAT"
	CodeMissingTodos         Code = "MISSING_TODOS"
	CodeInvalidPeriod        Code = "INVALID_PERIOD"

	// Configuration and upstream model failure codes.
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeInvalidAPIKey      Code = "INVALID_API_KEY"
	CodeQuotaExceeded      Code = "QUOTA_EXCEEDED"
	CodeNetworkError       Code = "NETWORK_ERROR"
	CodeModelNotFound      Code = "MODEL_NOT_FOUND"
	CodeValidationError    Code = "VALIDATION_ERROR"
	CodeParseError         Code = "AI_PARSE_ERROR"
	CodeAnalysisError      Code = "AI_ANALYSIS_ERROR"
)

// HTTPStatus maps a code to its HTTP response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeMissingInput, CodeInvalidInput, CodeInvalidRequestFormat,
		CodeMissingTodos, CodeInvalidPeriod:
		return http.StatusBadRequest
	case CodeQuotaExceeded:
		return http.StatusTooManyRequests
	case CodeNetworkError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error pairs a stable code with a user-facing (Korean) message. Input
// validation and upstream classification both produce this type so the HTTP
// layer renders every AI failure the same way.
type Error struct {
	Code    Code
	Message string
	// Detail carries the raw upstream error text for non-production
	// debugging. Never shown to end users in production builds.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return string(e.Code) + ": " + e.Message + ": " + e.Detail
	}
	return string(e.Code) + ": " + e.Message
}

// NewError creates an Error with no detail.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}
