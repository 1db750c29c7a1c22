// Package pricing looks up live market prices through SerpApi and downloads
// product images for identification.
package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultSerpAPIURL = "https://serpapi.com/search.json"

var ErrMissingAPIKey = errors.New("serpapi: api key is required")

// SerpAPIClient queries Google Shopping (engine=google, tbm=shop) and Google
// reverse image search through SerpApi.
type SerpAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var (
	_ interfaces.IMarketPriceLookup = (*SerpAPIClient)(nil)
	_ interfaces.IProductDetector   = (*SerpAPIClient)(nil)
)

type SerpAPIOption func(*SerpAPIClient)

// WithBaseURL points the client at another search endpoint (tests, proxies).
func WithBaseURL(u string) SerpAPIOption {
	return func(c *SerpAPIClient) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) SerpAPIOption {
	return func(c *SerpAPIClient) { c.httpClient = hc }
}

func NewSerpAPIClient(apiKey string, opts ...SerpAPIOption) (*SerpAPIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	c := &SerpAPIClient{
		baseURL: DefaultSerpAPIURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type shoppingResponse struct {
	ShoppingResults []struct {
		Title     string `json:"title"`
		Price     string `json:"price"`
		Link      string `json:"link"`
		Source    string `json:"source"`
		Thumbnail string `json:"thumbnail"`
	} `json:"shopping_results"`
}

// LookupMarketPrices returns at most limit shopping offers for productName.
// No results is not an error.
func (c *SerpAPIClient) LookupMarketPrices(ctx context.Context, productName string, limit int) ([]entities.MarketPrice, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, errors.New("serpapi: product name is required")
	}
	if limit <= 0 {
		limit = 5
	}

	var out shoppingResponse
	params := url.Values{"engine": {"google"}, "q": {productName}, "tbm": {"shop"}}
	if err := c.search(ctx, params, &out); err != nil {
		return nil, err
	}

	prices := make([]entities.MarketPrice, 0, limit)
	for _, r := range out.ShoppingResults {
		if len(prices) == limit {
			break
		}
		prices = append(prices, entities.MarketPrice{
			Title:     r.Title,
			Price:     r.Price,
			Link:      r.Link,
			Source:    r.Source,
			Thumbnail: r.Thumbnail,
		})
	}
	log.Printf("[price][serpapi] shopping lookup query=%q offers=%d", productName, len(prices))
	return prices, nil
}

type reverseImageResponse struct {
	ImageResults []struct {
		BestGuess string `json:"best_guess"`
	} `json:"image_results"`
}

// DetectProduct asks Google reverse image search for its best guess of what a
// publicly reachable image shows. An empty name means no guess.
func (c *SerpAPIClient) DetectProduct(ctx context.Context, imageURL string) (string, error) {
	var out reverseImageResponse
	params := url.Values{"engine": {"google_reverse_image"}, "image_url": {imageURL}}
	if err := c.search(ctx, params, &out); err != nil {
		return "", err
	}
	if len(out.ImageResults) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.ImageResults[0].BestGuess), nil
}

func (c *SerpAPIClient) search(ctx context.Context, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("serpapi: create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("serpapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("serpapi: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("serpapi: request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("serpapi: parse response: %w", err)
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" && !strings.Contains(strings.ToLower(apiErr.Error), "hasn't returned any results") {
		return fmt.Errorf("serpapi: %s", apiErr.Error)
	}
	return nil
}
