package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports a completion that was not valid JSON for the requested
// shape. It propagates to the caller; structured calls are never silently
// coerced or retried on parse failure.
type ParseError struct {
	Err error
	Raw string // response text that failed to parse (trimmed)
}

func (e *ParseError) Error() string {
	raw := e.Raw
	if len(raw) > 200 {
		raw = raw[:200] + "..."
	}

	return fmt.Sprintf("failed to parse structured response: %v (response: %s)", e.Err, raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// GenerateStructured runs a text generation call and decodes the response
// into out. The prompt is expected to carry its own JSON format instructions;
// the response may be wrapped in a markdown code fence.
func GenerateStructured(ctx context.Context, generator TextGenerator, req TextGenerationRequest, out any) error {
	resp, err := generator.GenerateText(ctx, req)
	if err != nil {
		return err
	}

	text := StripCodeFence(resp.Text)

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &ParseError{Err: err, Raw: text}
	}

	return nil
}

// StripCodeFence removes a wrapping markdown code fence (``` or ```json)
// from a model response, returning the inner text trimmed.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)

	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// drop the opening fence line (it may carry a language identifier)
	newlineIdx := strings.Index(trimmed, "\n")
	if newlineIdx == -1 {
		return strings.TrimSpace(strings.Trim(trimmed, "`"))
	}

	trimmed = trimmed[newlineIdx+1:]

	// drop the closing fence
	if endIdx := strings.LastIndex(trimmed, "```"); endIdx != -1 {
		trimmed = trimmed[:endIdx]
	}

	return strings.TrimSpace(trimmed)
}
