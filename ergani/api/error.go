package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// AuthenticationError is returned when the authentication endpoint answers
// with a non-200 status, when any submission receives a 401, or when the
// authentication round-trip fails at the network level (Err is set and the
// status code is zero).
type AuthenticationError struct {
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("status: %d message: %s", e.StatusCode, MessageOrDefault(e.Message, e.StatusCode))
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// APIError is returned for any non-2xx, non-204 submission response that is
// not a 401. Payload holds the original request body for diagnostics.
type APIError struct {
	Message    string
	StatusCode int
	Body       string
	Payload    interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status: %d message: %s", e.StatusCode, MessageOrDefault(e.Message, e.StatusCode))
}

// MessageOrDefault substitutes a generic message when the response carried
// none. Errors store the raw extracted message; defaulting happens only at
// formatting time.
func MessageOrDefault(message string, status int) string {
	if message != "" {
		return message
	}
	switch {
	case status >= 500:
		return "Service unavailable, please try again later"
	case status == 400:
		return "Please check your inputs and try again"
	}
	return ""
}

// ExtractErrorMessage pulls a human-readable message out of an error
// response. JSON bodies are searched for "message", "msg" and "detail" in
// that order, falling back to the raw body when the object has other
// content. Plain-text bodies are returned trimmed. Anything else yields an
// empty string.
func ExtractErrorMessage(resp *resty.Response) string {
	contentType := resp.Header().Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var decoded map[string]interface{}
		if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
			return ""
		}

		for _, key := range []string{"message", "msg", "detail"} {
			if v, ok := decoded[key]; ok {
				if s, ok := v.(string); ok {
					return s
				}
				return fmt.Sprintf("%v", v)
			}
		}

		if len(decoded) == 0 {
			return ""
		}
		return strings.TrimSpace(resp.String())
	}

	if strings.Contains(contentType, "text/plain") {
		return strings.TrimSpace(resp.String())
	}

	return ""
}
