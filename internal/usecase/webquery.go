// Package usecase holds the web query pipeline: intent routing, result
// formatting, and the degradation rules that keep every failure inside a
// user-facing sentence.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"

	"aria-ai/internal/domain"
	"aria-ai/internal/infra/tracer"
	"aria-ai/internal/query"
)

// SearchClient abstracts the outbound search adapter.
type SearchClient interface {
	// Search returns the raw provider document for a query. News never
	// returns a nil document; other intents return (nil, err) on failure.
	Search(ctx context.Context, query string, intent domain.Intent, location string) (*domain.Document, error)
}

// WebQueryService is the top-level entry point of the web query pipeline.
// It never returns an error: every failure mode degrades to an apologetic
// sentence the conversational layer can speak as-is.
type WebQueryService struct {
	search SearchClient
	logger *slog.Logger
}

// NewWebQueryService creates the service around a search client.
func NewWebQueryService(search SearchClient, logger *slog.Logger) *WebQueryService {
	return &WebQueryService{search: search, logger: logger}
}

// Process answers a free-form question given a coarse intent label.
// Unknown labels fall back to a general search. The returned string is
// always non-empty.
func (s *WebQueryService) Process(ctx context.Context, rawQuery, searchType string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("web query pipeline panicked", "query", rawQuery, "panic", r)
			answer = fmt.Sprintf("I encountered an error while searching for information about '%s'. Please try again or rephrase your question.", rawQuery)
		}
	}()

	ctx, span := tracer.StartSpan(ctx, "webquery.process",
		trace.WithAttributes(tracer.StringAttr("webquery.type", searchType)),
	)
	defer span.End()

	requestID := ulid.Make().String()
	intent := domain.ParseIntent(searchType)
	s.logger.Info("processing web query",
		"request_id", requestID,
		"query", rawQuery,
		"type", intent,
	)

	cleaned, location := query.ExtractLocation(rawQuery)

	doc, err := s.search.Search(ctx, cleaned, intent, location)
	if err != nil {
		s.logger.Warn("search failed", "request_id", requestID, "error", err)
		tracer.RecordError(span, err)
		doc = nil
	}
	if doc.Empty() {
		return fmt.Sprintf("I'm sorry, I couldn't find any information about '%s'.", cleaned)
	}

	response := formatFor(intent)(cleaned, doc, location)
	if strings.TrimSpace(response) == "" {
		s.logger.Debug("formatter produced no content", "request_id", requestID, "type", intent)
		return fmt.Sprintf("I found some information about %s, but couldn't extract the specific details you might be looking for. Could you try asking in a different way?", cleaned)
	}
	tracer.SetOK(span)
	return response
}

// formatter renders a raw document into a spoken-style answer. Formatters
// never fail; unusable documents degrade to an apologetic sentence.
type formatter func(query string, doc *domain.Document, location string) string

// formatFor dispatches over the closed intent set. The switch is
// exhaustive so a new intent cannot silently fall through to general.
func formatFor(intent domain.Intent) formatter {
	switch intent {
	case domain.IntentNews:
		return formatNews
	case domain.IntentWeather:
		return formatWeather
	case domain.IntentSports:
		return formatSports
	case domain.IntentPrice:
		return formatPrice
	case domain.IntentDefinition:
		return formatDefinition
	case domain.IntentFacts:
		return formatFacts
	case domain.IntentGeneral:
		return formatGeneral
	}
	return formatGeneral
}
