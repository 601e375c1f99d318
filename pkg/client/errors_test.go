package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NetworkError
		expected string
	}{
		{
			name:     "http status",
			err:      &NetworkError{URL: "https://pokeapi.co/api/v2/pokemon/missingno/", StatusCode: 404, Status: "404 Not Found"},
			expected: "fetch https://pokeapi.co/api/v2/pokemon/missingno/: 404 Not Found",
		},
		{
			name:     "transport failure",
			err:      &NetworkError{URL: "https://pokeapi.co/api/v2/type/fire/", Err: errors.New("connection refused")},
			expected: "fetch https://pokeapi.co/api/v2/type/fire/: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("dial tcp: i/o timeout")
	err := fmt.Errorf("aggregate: %w", &NetworkError{URL: "x", Err: inner})

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the transport error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatal("errors.As should find *NetworkError")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorClass
	}{
		{0, ErrorClassNetwork},
		{404, ErrorClassNotFound},
		{400, ErrorClassClient},
		{429, ErrorClassClient},
		{500, ErrorClassServer},
		{503, ErrorClassServer},
		{200, ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			if got := classify(tt.status); got != tt.want {
				t.Errorf("classify(%d) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrapped: %w", &NetworkError{StatusCode: 404})) {
		t.Error("expected wrapped 404 to be not found")
	}
	if IsNotFound(&NetworkError{StatusCode: 500}) {
		t.Error("500 is not a not-found")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain error is not a not-found")
	}
}
