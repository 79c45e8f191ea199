package paymentwindow

import (
	"errors"
	"net/http"

	"github.com/onpay/paymentwindow/signature"
)

var (
	// ErrMissingSecret is returned when signing or verifying without a shared secret.
	ErrMissingSecret = errors.New("paymentwindow: shared secret is not configured")
	// ErrMissingGatewayID is returned when signing a field set without a gateway id.
	ErrMissingGatewayID = errors.New("paymentwindow: gateway id is not set")
	// ErrIncompleteRequest wraps the names of the missing required fields.
	ErrIncompleteRequest = errors.New("paymentwindow: required fields missing")

	ErrMissingSignature = signature.ErrMissingSignature
	ErrInvalidSignature = signature.ErrInvalidSignature
	ErrMalformedValue   = signature.ErrMalformedValue
)

// ErrorType is the coarse class of an error returned by [CallbackHandler].
type ErrorType string

const (
	InvalidRequest  ErrorType = "invalid_request"  // Missing, malformed or unsigned callback.
	ProcessingError ErrorType = "processing_error" // The provider failed to handle the callback.
)

// ErrorCode is a machine-readable identifier for the specific failure.
type ErrorCode string

const (
	InvalidSignature  ErrorCode = "invalid_signature"  // Signature does not match the fields.
	SignatureRequired ErrorCode = "signature_required" // No signature field was sent.
	MalformedCallback ErrorCode = "malformed_callback" // A namespaced field could not be decoded.
)

// Error is the JSON payload written by [CallbackHandler] on failure.
// Providers may return it to control the response.
type Error struct {
	Type    ErrorType `json:"type"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Param   *string   `json:"param,omitempty"`

	status int
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// StatusCode returns the HTTP status written for the error.
func (e *Error) StatusCode() int {
	if e == nil || e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

type errorOption func(*Error)

// WithOffendingParam names the callback parameter that triggered the error.
func WithOffendingParam(param string) errorOption {
	return func(er *Error) {
		er.Param = &param
	}
}

// WithStatusCode overrides the HTTP status code returned to the client.
func WithStatusCode(status int) errorOption {
	return func(er *Error) {
		er.status = status
	}
}

// NewInvalidRequestError builds a Bad Request payload.
func NewInvalidRequestError(message string, opts ...errorOption) *Error {
	return newError(InvalidRequest, ErrorCode(InvalidRequest), message, append([]errorOption{WithStatusCode(http.StatusBadRequest)}, opts...)...)
}

// NewProcessingError builds an Internal Server Error payload.
func NewProcessingError(message string, opts ...errorOption) *Error {
	return newError(ProcessingError, ErrorCode(ProcessingError), message, append([]errorOption{WithStatusCode(http.StatusInternalServerError)}, opts...)...)
}

// NewHTTPError allows callers to control the status code explicitly.
func NewHTTPError(status int, typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	return newError(typ, code, message, append(opts, WithStatusCode(status))...)
}

func newError(typ ErrorType, code ErrorCode, message string, opts ...errorOption) *Error {
	errPayload := &Error{
		Type:    typ,
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(errPayload)
	}
	return errPayload
}
