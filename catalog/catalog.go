package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SearchFilters carries the normalized input of a search request. Defaults
// are applied by the gateway before the filters reach the catalog.
type SearchFilters struct {
	SearchKey  string   `json:"search_key,omitempty"`
	Platforms  []string `json:"platforms"`
	Regions    []string `json:"regions"`
	RomID      string   `json:"rom_id,omitempty"`
	MaxResults int      `json:"max_results"`
	Page       int      `json:"page"`
}

// Service is the catalog backend as seen by the gateway. Results are opaque
// JSON passed through to the client byte for byte, so the backend controls
// its own response shape and key order.
type Service interface {
	Search(ctx context.Context, filters SearchFilters) (json.RawMessage, error)
	Entry(ctx context.Context, slug string, random bool) (json.RawMessage, error)
	Platforms(ctx context.Context) (json.RawMessage, error)
	Regions(ctx context.Context) (json.RawMessage, error)
	Info(ctx context.Context) (json.RawMessage, error)
	Ping(ctx context.Context) error
}

// StatusError is a failure with a declared HTTP status. The gateway maps it
// to that status with the standard phrase; Message stays server-side.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("catalog error: status %d", e.Code)
	}
	return fmt.Sprintf("catalog error: status %d: %s", e.Code, e.Message)
}

// NewStatusError builds a StatusError, defaulting nonsense codes to 500.
func NewStatusError(code int, message string) *StatusError {
	if code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}
	return &StatusError{Code: code, Message: message}
}
