package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(respond func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	respond(c)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestBadRequest(t *testing.T) {
	rec := performRequest(func(c *gin.Context) {
		BadRequest(c, "missing project_name", errors.New("project_name is required"))
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, CodeBadRequest, resp.Error)
	assert.Equal(t, "missing project_name", resp.Message)
	assert.Equal(t, "project_name is required", resp.Details)
}

func TestPathEscape(t *testing.T) {
	rec := performRequest(func(c *gin.Context) {
		PathEscape(c, fmt.Errorf("path %q escapes the output root", "../etc"))
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, CodePathEscape, resp.Error)
	assert.Contains(t, resp.Message, "output root")
}

func TestNotFound(t *testing.T) {
	rec := performRequest(func(c *gin.Context) {
		NotFound(c, "run")
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, CodeNotFound, resp.Error)
	assert.Equal(t, "run not found", resp.Message)
}

func TestBadGateway(t *testing.T) {
	rec := performRequest(func(c *gin.Context) {
		BadGateway(c, "Failed to generate project plan", errors.New("API request failed with status 500"))
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, CodeBadGateway, resp.Error)
	assert.Equal(t, "Failed to generate project plan", resp.Message)
}

func TestConflict(t *testing.T) {
	rec := performRequest(func(c *gin.Context) {
		Conflict(c, "run already finished")
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, CodeConflict, decodeError(t, rec).Error)
}

func TestSanitizeErrorDevelopmentKeepsDetail(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	detail := sanitizeError(errors.New("API request failed with status 500: upstream body"))
	assert.Equal(t, "API request failed with status 500: upstream body", detail)
}

func TestSanitizeErrorProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	cases := map[string]string{
		"API request failed with status 500: body": "upstream service failed",
		"dial tcp: connection refused":             "connection error occurred",
		"file not found":                           "resource not found",
		"something exploded":                       "an error occurred",
	}

	for input, want := range cases {
		assert.Equal(t, want, sanitizeError(errors.New(input)), "input: %s", input)
	}

	assert.Equal(t, "request timed out", sanitizeError(context.DeadlineExceeded))
	assert.Equal(t, "request canceled", sanitizeError(context.Canceled))
}
