// Package tool exposes the web query pipeline through the LLM
// function-calling protocol.
package tool

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"aria-ai/internal/domain"
	"aria-ai/internal/infra/tracer"
)

const maxQueryLength = 500

// QueryProcessor is the pipeline behind the web query tool.
type QueryProcessor interface {
	// Process always returns a speakable answer, degrading internally on
	// search failures.
	Process(ctx context.Context, query, searchType string) string
}

// WebQueryTool answers free-form questions with typed web searches.
type WebQueryTool struct {
	processor QueryProcessor
	logger    *slog.Logger
}

// NewWebQueryTool creates the tool around a query processor.
func NewWebQueryTool(processor QueryProcessor, logger *slog.Logger) *WebQueryTool {
	return &WebQueryTool{processor: processor, logger: logger}
}

// NewValidatedWebQueryTool creates the tool with JSON Schema validation in
// front of it. This is the constructor agent hosts should register.
func NewValidatedWebQueryTool(processor QueryProcessor, logger *slog.Logger) (domain.Tool, error) {
	return WithSchemaValidation(NewWebQueryTool(processor, logger))
}

func (t *WebQueryTool) Name() string { return "web_query" }
func (t *WebQueryTool) Description() string {
	return "Answer a question using a typed web search (news, weather, sports, prices, definitions, facts or general)"
}

func (t *WebQueryTool) Schema() domain.ToolSchema {
	return domain.ToolSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "The question to answer"},
				"search_type": {"type": "string", "enum": ["news", "weather", "sports", "scores", "price", "product", "definition", "facts", "general"], "description": "Kind of answer wanted (default: general)"}
			},
			"required": ["query"]
		}`),
	}
}

type webQueryParams struct {
	Query      string `json:"query"`
	SearchType string `json:"search_type,omitempty"`
}

func (t *WebQueryTool) Execute(ctx context.Context, params json.RawMessage) (*domain.ToolResult, error) {
	return Execute(ctx, "tool.web_query", t.logger, params,
		func(ctx context.Context, span trace.Span, p webQueryParams) (any, error) {
			if strings.TrimSpace(p.Query) == "" {
				return nil, domain.WrapOp("web_query", domain.ErrInvalidInput)
			}
			if err := ValidateAll(
				ValidateMaxLength("query", p.Query, maxQueryLength),
				ValidateEnum("search_type", p.SearchType,
					"news", "weather", "sports", "scores", "price", "product", "definition", "facts", "general"),
			); err != nil {
				return nil, err
			}

			span.SetAttributes(
				tracer.StringAttr("tool.query", p.Query),
				tracer.StringAttr("tool.search_type", p.SearchType),
			)

			answer := t.processor.Process(ctx, p.Query, p.SearchType)
			t.logger.Debug("web query completed", "query", p.Query, "type", p.SearchType)
			return answer, nil
		},
	)
}
