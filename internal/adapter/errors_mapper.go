package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx response into a sentinel error carrying the
// server's message. JSON error bodies ({"error": "..."}) are unwrapped and
// HTML error pages are dropped.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := ""
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "text/html") {
		body = errorMessage(resp.Body())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return withMessage(ErrBadRequest, body)
	case http.StatusUnauthorized:
		return withMessage(ErrUnauthorized, body)
	case http.StatusForbidden:
		return withMessage(ErrForbidden, body)
	case http.StatusNotFound:
		return withMessage(ErrNotFound, body)
	case http.StatusInternalServerError:
		return withMessage(ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func withMessage(err error, message string) error {
	if message == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, message)
}

func errorMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
