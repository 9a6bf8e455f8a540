// Package searchapi is the outbound HTTP adapter for the web search
// provider. All transport failures terminate here: callers get either a
// parsed document or an error to log, never a panic or a partial decode.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"aria-ai/internal/domain"
	"aria-ai/internal/infra/config"
	"aria-ai/internal/infra/tracer"
	"aria-ai/internal/query"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultNum       = 10
	newsVariantNum   = 5
	defaultRateLimit = 5
	defaultRateBurst = 10
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Client issues searches against a SearchAPI-style provider. One Client is
// shared process-wide for connection pooling; it holds no per-request state.
type Client struct {
	httpClient *http.Client
	cfg        config.SearchConfig
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*domain.Document]
	logger     *slog.Logger
}

// New creates a search client. If httpClient is nil a pooled client with
// the configured per-call timeout is used.
func New(cfg config.SearchConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.searchapi.io/api/v1/search"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Num <= 0 {
		cfg.Num = defaultNum
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: NewPooledTransport(),
			Timeout:   cfg.Timeout,
		}
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = defaultRateBurst
	}

	c := &Client{
		httpClient: httpClient,
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(limit), burst),
		logger:     logger,
	}
	if cfg.CircuitBreaker.Enabled {
		c.breaker = newBreaker(cfg.CircuitBreaker, logger)
	}
	return c
}

func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*domain.Document] {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = 60 * time.Second
	}
	return gobreaker.NewCircuitBreaker[*domain.Document](gobreaker.Settings{
		Name:        "searchapi",
		MaxRequests: 1, // allow 1 probe in half-open state
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

// Search performs a web search for the given intent. For every intent
// except news exactly one request is issued and any failure is returned as
// an error (the caller logs it and degrades). News fans out over the fixed
// three query variants sequentially; per-variant failures are swallowed and
// the merged document is always non-nil, possibly with empty sections.
func (c *Client) Search(ctx context.Context, rawQuery string, intent domain.Intent, location string) (*domain.Document, error) {
	if intent == domain.IntentNews {
		return c.newsSearch(ctx, location), nil
	}

	q := query.Build(intent, rawQuery, location)

	// The location parameter only helps localized intents.
	loc := ""
	switch intent {
	case domain.IntentWeather, domain.IntentNews, domain.IntentSports:
		loc = location
	}

	doc, err := c.doSearch(ctx, q, c.cfg.Num, loc)
	if err != nil {
		return nil, domain.WrapOp("searchapi.search", err)
	}
	return doc, nil
}

// newsSearch merges the three-variant fan-out. Variants run one after
// another; a failed variant is logged and skipped, and the first non-empty
// answer box across variants wins. Organic results are deduplicated by
// link after concatenation.
func (c *Client) newsSearch(ctx context.Context, location string) *domain.Document {
	merged := &domain.Document{}
	for _, variant := range query.NewsVariants(location) {
		doc, err := c.doSearch(ctx, variant, newsVariantNum, "")
		if err != nil {
			c.logger.Warn("news variant search failed", "variant", variant, "error", err)
			continue
		}
		merged.TopStories = append(merged.TopStories, doc.TopStories...)
		merged.OrganicResults = append(merged.OrganicResults, doc.OrganicResults...)
		if merged.AnswerBox == nil && !doc.AnswerBox.Empty() {
			merged.AnswerBox = doc.AnswerBox
		}
	}
	merged.OrganicResults = DedupeByLink(merged.OrganicResults)
	return merged
}

func (c *Client) doSearch(ctx context.Context, q string, num int, location string) (*domain.Document, error) {
	if !c.limiter.Allow() {
		return nil, domain.ErrRateLimit
	}
	if c.breaker == nil {
		return c.fetch(ctx, q, num, location)
	}
	doc, err := c.breaker.Execute(func() (*domain.Document, error) {
		return c.fetch(ctx, q, num, location)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("%w: circuit open", domain.ErrSearchUnavailable)
	}
	return doc, err
}

func (c *Client) fetch(ctx context.Context, q string, num int, location string) (*domain.Document, error) {
	ctx, span := tracer.StartSpan(ctx, "searchapi.fetch",
		trace.WithAttributes(tracer.StringAttr("search.query", q), tracer.IntAttr("search.num", num)),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("q", q)
	params.Set("num", strconv.Itoa(num))
	params.Set("engine", "google")
	params.Set("gl", "us")
	params.Set("hl", "en")
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("%w: search returned status %d", domain.ErrProviderError, resp.StatusCode)
		tracer.RecordError(span, err)
		return nil, err
	}

	var doc domain.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		tracer.RecordError(span, err)
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	tracer.SetOK(span)
	return &doc, nil
}

// NewPooledTransport creates an http.Transport sized for a single search
// provider host with steady, low-volume traffic.
func NewPooledTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaultTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     120 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}
