package tenor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *APIError
	}{
		{
			name: "code and message only",
			body: `{"error":{"code":404,"message":"Not found"}}`,
			want: &APIError{Code: 404, Message: "Not found"},
		},
		{
			name: "empty details list is kept",
			body: `{"error":{"code":400,"message":"x","details":[]}}`,
			want: &APIError{Code: 400, Message: "x", Details: []map[string]any{}},
		},
		{
			name: "non-string status is dropped",
			body: `{"error":{"code":400,"message":"x","status":7}}`,
			want: &APIError{Code: 400, Message: "x"},
		},
		{
			name: "error is a string",
			body: `{"error":"boom"}`,
		},
		{
			name: "missing message",
			body: `{"error":{"code":500}}`,
		},
		{
			name: "code is a string",
			body: `{"error":{"code":"500","message":"x"}}`,
		},
		{
			name: "success payload",
			body: `{"results":[]}`,
		},
		{
			name: "not JSON",
			body: `<html></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAPIError([]byte(tt.body)))
		})
	}
}

func TestAPIError(t *testing.T) {
	t.Run("Error message is the upstream message", func(t *testing.T) {
		err := &APIError{Code: 400, Message: "Invalid parameter: limit"}
		assert.Equal(t, "Invalid parameter: limit", err.Error())
	})

	t.Run("errors.Is and errors.As through wrapping", func(t *testing.T) {
		status := StatusNotFound
		wrapped := fmt.Errorf("search failed: %w", &APIError{Code: 404, Message: "nope", Status: &status})

		assert.True(t, errors.Is(wrapped, ErrAPI))
		assert.False(t, errors.Is(wrapped, ErrUnexpectedStatus))

		var apiErr *APIError
		require.True(t, errors.As(wrapped, &apiErr))
		assert.True(t, apiErr.IsNotFound())
		assert.Equal(t, StatusNotFound, apiErr.StatusString())
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		tests := []struct {
			code     int
			expected bool
		}{
			{401, true},
			{403, true},
			{404, false},
			{500, false},
		}

		for _, tt := range tests {
			err := &APIError{Code: tt.code}
			assert.Equal(t, tt.expected, err.IsUnauthorized())
		}
	})

	t.Run("IsInvalidArgument from status alone", func(t *testing.T) {
		status := StatusInvalidArgument
		err := &APIError{Code: 200, Status: &status}
		assert.True(t, err.IsInvalidArgument())
		assert.Equal(t, "", (&APIError{}).StatusString())
	})
}
