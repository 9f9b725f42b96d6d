package orchestrator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the orchestrator.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	ErrorCode  int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "status " + e.Status
	}
	return fmt.Sprintf("status %s: %s", e.Status, e.Message)
}

// NotFound reports whether the orchestrator rejected an unknown resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newAPIError(resp *http.Response, body []byte) *APIError {
	e := &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	var decoded struct {
		Message   string `json:"message"`
		ErrorCode int    `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil {
		e.Message = decoded.Message
		e.ErrorCode = decoded.ErrorCode
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(body))
	}
	return e
}
