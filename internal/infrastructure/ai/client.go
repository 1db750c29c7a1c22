// Package ai talks to OpenAI compatible model endpoints (OpenAI, Azure OpenAI,
// Ollama) over plain HTTP: chat completions for vision and estimation, and
// embeddings for similarity search.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// Config configures the model endpoint. When APIVersion is set the client
// speaks the Azure OpenAI dialect: deployment scoped paths, api-key header.
type Config struct {
	BaseURL           string
	APIKey            string
	APIVersion        string
	RequestsPerMinute int
	Timeout           time.Duration
	MaxRetries        int
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	backoff    func(attempt int) time.Duration
}

// APIError is a non-retryable (or retries exhausted) HTTP failure.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("model api error (status %d): %s", e.StatusCode, e.Body)
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("ai: base url is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute/10+1)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		limiter:    limiter,
		maxRetries: maxRetries,
		backoff:    retryDelay,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: otelhttp.NewTransport(&http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			}),
		},
	}, nil
}

// endpoint resolves an operation ("chat/completions", "embeddings") for a model.
func (c *Client) endpoint(model, operation string) string {
	if c.apiVersion != "" {
		return fmt.Sprintf("%s/openai/deployments/%s/%s?api-version=%s",
			c.baseURL, url.PathEscape(model), operation, url.QueryEscape(c.apiVersion))
	}
	return c.baseURL + "/" + operation
}

// postJSON sends body and decodes the answer into out. 429 and 5xx answers
// and transport errors are retried with backoff, honouring Retry-After.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, c.backoffFor(attempt-1, lastErr)); err != nil {
				return err
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			if c.apiVersion != "" {
				req.Header.Set("api-key", c.apiKey)
			} else {
				req.Header.Set("Authorization", "Bearer "+c.apiKey)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("request failed: %w", err)
			log.Printf("[ai][client] transport error attempt=%d err=%v", attempt, err)
			continue
		}
		data, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = &retryableError{
				APIError:   APIError{StatusCode: resp.StatusCode, Body: truncateBody(data)},
				retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			}
			log.Printf("[ai][client] retryable status attempt=%d status=%d", attempt, resp.StatusCode)
			continue
		}
		if readErr != nil {
			return fmt.Errorf("failed to read response: %w", readErr)
		}
		if resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Body: truncateBody(data)}
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
		return nil
	}

	var re *retryableError
	if errors.As(lastErr, &re) {
		return &re.APIError
	}
	return lastErr
}

type retryableError struct {
	APIError
	retryAfter time.Duration
}

const maxRetryDelay = 8 * time.Second

// backoffFor honours Retry-After up to maxRetryDelay.
func (c *Client) backoffFor(attempt int, lastErr error) time.Duration {
	var re *retryableError
	if errors.As(lastErr, &re) && re.retryAfter > 0 {
		return min(re.retryAfter, maxRetryDelay)
	}
	return c.backoff(attempt)
}

func retryDelay(attempt int) time.Duration {
	if attempt >= 5 {
		return maxRetryDelay
	}
	return min(500*time.Millisecond<<attempt, maxRetryDelay)
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncateBody(b []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(b))
	if len(s) <= limit {
		return s
	}
	n := limit
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
