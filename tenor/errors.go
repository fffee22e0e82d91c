package tenor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tenor configuration")
	// ErrUnknownEndpoint indicates a request for an endpoint outside the registry
	ErrUnknownEndpoint = errors.New("unknown tenor endpoint")
	// ErrAPI matches every *APIError
	ErrAPI = errors.New("tenor API error")
	// ErrUnexpectedStatus matches every *HTTPError
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrDecode indicates the response body was not valid JSON for the expected shape
	ErrDecode = errors.New("failed to decode tenor response")
)

// Google API status values commonly returned by Tenor.
const (
	StatusInvalidArgument   = "INVALID_ARGUMENT"
	StatusPermissionDenied  = "PERMISSION_DENIED"
	StatusNotFound          = "NOT_FOUND"
	StatusResourceExhausted = "RESOURCE_EXHAUSTED"
)

// APIError is an error reported by the Tenor service in the response body.
//
// It follows the HTTP mapping of google.rpc.Status: Code is the HTTP status
// code, Status the enum name of the gRPC code. Status and Details are nil when
// the payload omits them.
type APIError struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Status  *string          `json:"status,omitempty"`
	Details []map[string]any `json:"details,omitempty"`
}

// Error returns the upstream message unchanged
func (e *APIError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrAPI) true for API errors
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// StatusString returns the status enum, or "" when the payload had none
func (e *APIError) StatusString() string {
	if e.Status == nil {
		return ""
	}
	return *e.Status
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.Code == 404 || e.StatusString() == StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.Code == 401 || e.Code == 403
}

// IsInvalidArgument checks if the service rejected the request parameters
func (e *APIError) IsInvalidArgument() bool {
	return e.Code == 400 || e.StatusString() == StatusInvalidArgument
}

// HTTPError is returned for a non-2xx response that carries no error payload.
type HTTPError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.StatusText)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) true for HTTP errors
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// parseAPIError returns the error carried by body, or nil when body is not an
// error envelope. An envelope is a top-level "error" object with a numeric
// "code" and a string "message".
func parseAPIError(body []byte) *APIError {
	if !gjson.ValidBytes(body) {
		return nil
	}

	payload := gjson.GetBytes(body, "error")
	if !payload.IsObject() {
		return nil
	}

	code := payload.Get("code")
	message := payload.Get("message")
	if code.Type != gjson.Number || message.Type != gjson.String {
		return nil
	}

	apiErr := &APIError{
		Code:    int(code.Int()),
		Message: message.String(),
	}

	if status := payload.Get("status"); status.Type == gjson.String {
		s := status.String()
		apiErr.Status = &s
	}

	if details := payload.Get("details"); details.IsArray() {
		apiErr.Details = make([]map[string]any, 0)
		for _, item := range details.Array() {
			if !item.IsObject() {
				continue
			}
			var record map[string]any
			if err := json.Unmarshal([]byte(item.Raw), &record); err != nil {
				continue
			}
			apiErr.Details = append(apiErr.Details, record)
		}
	}

	return apiErr
}
