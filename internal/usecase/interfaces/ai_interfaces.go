package interfaces

import (
	"context"
	"encoding/json"

	"damage_triage/internal/domain/entities"
)

// IDescriptionGenerator produces the standardized damage description used for embeddings.
// The output must not mention costs, causes or repair steps.
type IDescriptionGenerator interface {
	Describe(ctx context.Context, images []entities.CaseImage, userDescription string) (string, error)
}

// IEmbedder turns a text into a fixed-dimension vector.
type IEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// IEstimationAgent produces a monetary estimate for a case.
type IEstimationAgent interface {
	Estimate(ctx context.Context, in EstimationInput) (EstimationResult, error)
}

// EstimationInput is everything the agent may ground its estimate on.
//
// PriceLookup is an optional capability: when nil the agent estimates from the
// case material and the similar cases only.
type EstimationInput struct {
	Images             []entities.CaseImage
	Description        string
	AIImageDescription string
	SimilarCases       []entities.SimilarCaseMatch
	PriceLookup        IMarketPriceLookup
}

// EstimationResult is the raw agent answer. Text must hold only a number;
// parsing it is the caller's job.
type EstimationResult struct {
	Text             string
	Sources          json.RawMessage
	ProviderMetadata json.RawMessage
}
