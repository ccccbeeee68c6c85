package league

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMatchToken = errors.New("invalid match token")

// APIError is returned for every non-2xx answer of the league API.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API returned status code: %d, message: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("API returned status code: %d, response: %s", e.Status, e.Body)
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Message: extractMessage(body),
		Body:    string(body),
	}
}

// extractMessage picks the human readable part of an error body: a plain
// string body, else its "message" field, else its "error" field.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var asString string
	if err := json.Unmarshal([]byte(trimmed), &asString); err == nil {
		return asString
	}

	var asObject struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &asObject); err == nil {
		if asObject.Message != "" {
			return asObject.Message
		}
		return asObject.Error
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "<") {
		return ""
	}
	return trimmed
}

// StatusOf returns the HTTP status of an APIError, or zero.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message returns the server provided message carried by err, or fallback
// when there is none (network failures, timeouts, empty bodies).
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
