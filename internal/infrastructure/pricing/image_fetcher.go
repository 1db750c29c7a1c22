package pricing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"damage_triage/internal/usecase/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultMaxImageBytes = 10 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds size limit")
	ErrNotAnImage    = errors.New("downloaded content is not an image")
)

// HTTPImageFetcher downloads images over HTTP(S).
type HTTPImageFetcher struct {
	httpClient *http.Client
	maxBytes   int64
}

var _ interfaces.IImageFetcher = (*HTTPImageFetcher)(nil)

func NewHTTPImageFetcher(maxBytes int64) *HTTPImageFetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &HTTPImageFetcher{
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, "", ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", ErrImageTooLarge
	}

	mimeType := ""
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		mimeType = mt
	}
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", ErrNotAnImage
	}
	return data, mimeType, nil
}
