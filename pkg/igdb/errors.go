package igdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every error returned by the client wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	ErrTransport       = errors.New("transport error")
	ErrDecode          = errors.New("decode error")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIO              = errors.New("io error")
	ErrTimeout         = errors.New("timeout")
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrClientIDRequired    = errors.New("client ID is required")
	ErrCredentialsRequired = errors.New("an access token or a client secret is required")
	ErrUnknownImageSize    = errors.New("unknown image size")
	ErrUnknownImageFormat  = errors.New("unknown image format")
)

// APIError is one entry of the error payload returned by the service.
type APIError struct {
	Title  string `json:"title"           yaml:"title"`
	Status int    `json:"status"          yaml:"status"`
	Cause  string `json:"cause,omitempty" yaml:"cause,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Cause == "" {
		return fmt.Sprintf("%s (status: %d)", e.Title, e.Status)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Cause, e.Status)
}

// ResponseError is returned for any non-success HTTP status.
type ResponseError struct {
	StatusCode int
	Errors     []APIError
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("multiple errors: %v", e.Errors)
	}
}

// Unwrap makes every ResponseError a transport error.
func (e *ResponseError) Unwrap() error {
	return ErrTransport
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseResponseError builds a ResponseError from a status code and body.
// Bodies that are not in the service's error format are kept as the cause.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	errResp := &ResponseError{StatusCode: statusCode}

	var list []APIError
	if err := json.Unmarshal(data, &list); err == nil {
		errResp.Errors = list

		return errResp
	}

	var single APIError
	if err := json.Unmarshal(data, &single); err == nil && single.Title != "" {
		errResp.Errors = []APIError{single}

		return errResp
	}

	if len(data) > 0 {
		errResp.Errors = []APIError{{
			Title:  http.StatusText(statusCode),
			Status: statusCode,
			Cause:  string(data),
		}}
	}

	return errResp
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	errResp := &ResponseError{}

	return errors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the service rejected the credentials.
func IsUnauthorized(err error) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == http.StatusUnauthorized || errResp.StatusCode == http.StatusForbidden
	}

	return false
}

// IsTransport checks if the error is a transport error.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsTimeout checks if a call ran past its deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsDecode checks if a payload did not match the expected schema.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsInvalidArgument checks if a query or call parameter was rejected.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsIO checks if a download could not be written to disk.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}
