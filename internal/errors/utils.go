package errors

import (
	"context"
	"errors"
	"os"
	"strings"
)

// sanitizes error messages for production responses
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	lowered := strings.ToLower(errMsg)

	// upstream completion API failures can echo request payloads; hide them
	if strings.Contains(lowered, "api request failed") || strings.Contains(lowered, "status 4") ||
		strings.Contains(lowered, "status 5") {
		return "upstream service failed"
	}

	if strings.Contains(lowered, "timeout") || strings.Contains(lowered, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lowered, "connection") || strings.Contains(lowered, "network") ||
		strings.Contains(lowered, "dial") {
		return "connection error occurred"
	}

	if strings.Contains(lowered, "not found") {
		return "resource not found"
	}

	if strings.Contains(lowered, "permission") || strings.Contains(lowered, "denied") {
		return "permission denied"
	}

	if strings.Contains(lowered, "validation") || strings.Contains(lowered, "binding") ||
		strings.Contains(lowered, "invalid") || strings.Contains(lowered, "required") {
		return "validation failed"
	}

	return "an error occurred"
}
