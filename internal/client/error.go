package client

import (
	"encoding/json"
	"fmt"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// Codes sent by the server in failure envelopes.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
)

// HTTPError represents a non-2xx response from the server.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func newHTTPError(status int, body []byte) *HTTPError {
	httpErr := &HTTPError{StatusCode: status, Body: body}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		httpErr.Code = env.Error.Code
		httpErr.Message = env.Error.Message
	}
	return httpErr
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code != "" {
		return fmt.Sprintf("http error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, string(e.Body))
}

// Unwrap exposes the domain sentinel matching the error code, so callers can
// use errors.Is(err, item.ErrItemNotFound).
func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Code {
	case CodeInvalidInput:
		return item.ErrInvalidInput
	case CodeNotFound:
		return item.ErrItemNotFound
	default:
		return nil
	}
}
