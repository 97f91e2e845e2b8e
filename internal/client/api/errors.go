package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnavailable marks failures where no response was received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401 responses. APIError values with status 401
	// match it through errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the backend. Detail carries the
// server-supplied message when one was present in the body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// decodeAPIError turns an error response into an *APIError, extracting the
// "detail" field the backend uses for both validation and auth failures.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch d := payload.Detail.(type) {
		case string:
			apiErr.Detail = d
		case nil:
		default:
			// Validation errors arrive as structured lists; keep them readable.
			if raw, err := json.Marshal(d); err == nil {
				apiErr.Detail = string(raw)
			}
		}
	}
	return apiErr
}
