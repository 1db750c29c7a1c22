package usecase

import (
	"context"
	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
)

var (
	ErrInvalidImageURL       = errors.New("image_url must be an absolute http(s) url")
	ErrImageDownloadFailed   = errors.New("image download failed")
	ErrProductNotIdentified  = errors.New("product could not be identified")
	ErrPriceLookupFailed     = errors.New("price lookup failed")
	ErrPriceLookupNotEnabled = errors.New("price lookup not configured")
)

const DefaultPriceLimit = 5

// IPriceUseCase identifies the product in an image and returns live offers for it.
type IPriceUseCase interface {
	LookupPrices(ctx context.Context, imageURL string) (entities.ProductPrices, error)
}

type PriceUseCase struct {
	fetcher    interfaces.IImageFetcher
	identifier interfaces.IProductIdentifier
	lookup     interfaces.IMarketPriceLookup
	detector   interfaces.IProductDetector
	limit      int
}

type PriceOption func(*PriceUseCase)

// WithProductDetector adds a URL based detector consulted when the vision
// model cannot name the product.
func WithProductDetector(d interfaces.IProductDetector) PriceOption {
	return func(u *PriceUseCase) { u.detector = d }
}

var _ IPriceUseCase = (*PriceUseCase)(nil)

func NewPriceUseCase(fetcher interfaces.IImageFetcher, identifier interfaces.IProductIdentifier, lookup interfaces.IMarketPriceLookup, opts ...PriceOption) *PriceUseCase {
	u := &PriceUseCase{fetcher: fetcher, identifier: identifier, lookup: lookup, limit: DefaultPriceLimit}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PriceUseCase) LookupPrices(ctx context.Context, imageURL string) (entities.ProductPrices, error) {
	imageURL = strings.TrimSpace(imageURL)
	parsed, err := url.Parse(imageURL)
	if imageURL == "" || err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return entities.ProductPrices{}, ErrInvalidImageURL
	}
	if u.lookup == nil || u.identifier == nil || u.fetcher == nil {
		return entities.ProductPrices{}, ErrPriceLookupNotEnabled
	}

	log.Printf("[price][usecase] lookup start host=%s", parsed.Host)
	data, mimeType, err := u.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return entities.ProductPrices{}, fmt.Errorf("%w: %w", ErrImageDownloadFailed, err)
	}

	name, err := u.identifier.IdentifyProduct(ctx, data, mimeType)
	name = strings.TrimSpace(name)
	if (err != nil || name == "") && u.detector != nil {
		log.Printf("[price][usecase] vision identification empty, trying detector err=%v", err)
		detected, detectErr := u.detector.DetectProduct(ctx, imageURL)
		if detectErr != nil {
			log.Printf("[price][usecase] detector failed err=%v", detectErr)
		} else if detected = strings.TrimSpace(detected); detected != "" {
			name, err = detected, nil
		}
	}
	if err != nil {
		return entities.ProductPrices{}, fmt.Errorf("%w: %w", ErrProductNotIdentified, err)
	}
	if name == "" {
		return entities.ProductPrices{}, ErrProductNotIdentified
	}

	prices, err := u.lookup.LookupMarketPrices(ctx, name, u.limit)
	if err != nil {
		return entities.ProductPrices{}, fmt.Errorf("%w: %w", ErrPriceLookupFailed, err)
	}
	if prices == nil {
		prices = []entities.MarketPrice{}
	}
	log.Printf("[price][usecase] lookup done product=%q offers=%d", name, len(prices))
	return entities.ProductPrices{ProductName: name, Prices: prices}, nil
}
