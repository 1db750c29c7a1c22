package interfaces

import (
	"context"
	"damage_triage/internal/domain/entities"
)

// IMarketPriceLookup fetches live market prices for a named product.
type IMarketPriceLookup interface {
	LookupMarketPrices(ctx context.Context, productName string, limit int) ([]entities.MarketPrice, error)
}

// IProductIdentifier names the product shown in an image.
type IProductIdentifier interface {
	IdentifyProduct(ctx context.Context, imageData []byte, mimeType string) (string, error)
}

// IImageFetcher downloads an image by URL.
type IImageFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, mimeType string, err error)
}

// IProductDetector names the product behind a publicly reachable image URL.
// An empty name with a nil error means the detector had no guess.
type IProductDetector interface {
	DetectProduct(ctx context.Context, imageURL string) (string, error)
}
