package tool

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"aria-ai/internal/domain"
)

type echoParams struct {
	Value string `json:"value"`
}

func TestExecuteInvalidParams(t *testing.T) {
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{`),
		func(_ context.Context, _ trace.Span, _ echoParams) (any, error) {
			t.Fatal("handler must not run on invalid params")
			return nil, nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error result")
	}
}

func TestExecuteStringResult(t *testing.T) {
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{"value":"hi"}`),
		func(_ context.Context, _ trace.Span, p echoParams) (any, error) {
			return "got " + p.Value, nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError || result.Content != "got hi" {
		t.Errorf("result = %+v", result)
	}
}

func TestExecuteStructResultIsJSON(t *testing.T) {
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{}`),
		func(_ context.Context, _ trace.Span, _ echoParams) (any, error) {
			return map[string]int{"n": 3}, nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Content, `"n": 3`) {
		t.Errorf("Content = %q, want indented JSON", result.Content)
	}
}

func TestExecuteHandlerErrorRetryable(t *testing.T) {
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{}`),
		func(_ context.Context, _ trace.Span, _ echoParams) (any, error) {
			return nil, domain.ErrRateLimit
		})
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError || !result.IsRetryable {
		t.Errorf("result = %+v, want retryable error", result)
	}
	if !strings.Contains(result.Content, "may succeed on retry") {
		t.Errorf("Content = %q, want retry hint", result.Content)
	}
}

func TestExecuteHandlerErrorPermanent(t *testing.T) {
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{}`),
		func(_ context.Context, _ trace.Span, _ echoParams) (any, error) {
			return nil, errors.New("bad input shape")
		})
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError || result.IsRetryable {
		t.Errorf("result = %+v, want permanent error", result)
	}
}

func TestExecutePassesThroughToolResult(t *testing.T) {
	custom := &domain.ToolResult{IsError: true, Content: "custom failure"}
	result, err := Execute(context.Background(), "tool.test", newTestLogger(), json.RawMessage(`{}`),
		func(_ context.Context, _ trace.Span, _ echoParams) (any, error) {
			return custom, nil
		})
	if err != nil {
		t.Fatal(err)
	}
	if result != custom {
		t.Error("ToolResult should pass through unchanged")
	}
	if result.Content != "custom failure" {
		t.Errorf("Content = %q", result.Content)
	}
}
