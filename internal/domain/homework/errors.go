// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

var ErrMissingKey = errors.New("missing key")
var ErrTypeMismatch = errors.New("type mismatch")

// TransportError means the review API could not be reached at all.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint %s is unreachable: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIResponseError covers a non-200 reply and a body that is not valid JSON.
// StatusCode is 200 for the latter.
type APIResponseError struct {
	StatusCode int
	Err        error
}

func (e *APIResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode response body as JSON: %v", e.Err)
	}
	return fmt.Sprintf("unexpected response status code: %d", e.StatusCode)
}

func (e *APIResponseError) Unwrap() error { return e.Err }

// SchemaError reports a payload or record that does not match the expected shape.
type SchemaError struct {
	Kind   error // ErrMissingKey or ErrTypeMismatch
	Key    string
	Actual any
}

func (e *SchemaError) Error() string {
	if e.Kind == ErrMissingKey {
		return fmt.Sprintf("key %q is missing", e.Key)
	}
	if e.Key == "" {
		return fmt.Sprintf("unexpected payload type: %T", e.Actual)
	}
	return fmt.Sprintf("unexpected type of %q: %T", e.Key, e.Actual)
}

func (e *SchemaError) Is(target error) bool { return target == e.Kind }

// UnknownVerdictError is returned for a status code absent from Verdicts.
type UnknownVerdictError struct {
	Status string
}

func (e *UnknownVerdictError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Status)
}

// ErrorKind names the taxonomy entry of err for log fields.
func ErrorKind(err error) string {
	var (
		transportErr *TransportError
		responseErr  *APIResponseError
		schemaErr    *SchemaError
		verdictErr   *UnknownVerdictError
	)
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &responseErr):
		return "api_response"
	case errors.As(err, &schemaErr):
		return "schema"
	case errors.As(err, &verdictErr):
		return "unknown_verdict"
	default:
		return "other"
	}
}
