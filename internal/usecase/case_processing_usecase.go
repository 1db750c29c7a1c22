package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidDescription    = errors.New("description is required")
	ErrMissingImages         = errors.New("at least one case image is required")
	ErrInvalidCaseImage      = errors.New("case image requires a public url")
	ErrDescriptionFailed     = errors.New("image description failed")
	ErrEmbeddingFailed       = errors.New("embedding failed")
	ErrEstimationFailed      = errors.New("estimation failed")
	ErrUnparseableEstimation = errors.New("estimation is not a number")
	ErrCaseStoreFailed       = errors.New("case store write failed")
)

// ICaseProcessingUseCase runs a raw submission through the triage pipeline:
//
//	describe -> embed -> similarity search -> estimate -> (optionally) store
type ICaseProcessingUseCase interface {
	ProcessCase(ctx context.Context, c entities.Case) (entities.Case, error)
}

type CaseProcessingUseCase struct {
	describer   interfaces.IDescriptionGenerator
	embedder    interfaces.IEmbedder
	searcher    interfaces.ISimilaritySearcher
	agent       interfaces.IEstimationAgent
	repo        interfaces.ICaseRepository
	priceLookup interfaces.IMarketPriceLookup
	events      interfaces.ICaseEventPublisher
	query       entities.SimilarityQuery
	roundTo     float64
	tracer      trace.Tracer
}

var _ ICaseProcessingUseCase = (*CaseProcessingUseCase)(nil)

type CaseProcessingOption func(*CaseProcessingUseCase)

// WithPriceLookup hands the market price tool to the estimation agent.
func WithPriceLookup(l interfaces.IMarketPriceLookup) CaseProcessingOption {
	return func(u *CaseProcessingUseCase) { u.priceLookup = l }
}

func WithEventPublisher(p interfaces.ICaseEventPublisher) CaseProcessingOption {
	return func(u *CaseProcessingUseCase) { u.events = p }
}

func WithSimilarityQuery(q entities.SimilarityQuery) CaseProcessingOption {
	return func(u *CaseProcessingUseCase) {
		if q.Threshold > 0 {
			u.query.Threshold = q.Threshold
		}
		if q.Limit > 0 {
			u.query.Limit = q.Limit
		}
	}
}

// WithEstimateRounding rounds parsed estimates to the nearest multiple of step.
// A zero step keeps the agent's number as is.
func WithEstimateRounding(step float64) CaseProcessingOption {
	return func(u *CaseProcessingUseCase) {
		if step >= 0 {
			u.roundTo = step
		}
	}
}

func NewCaseProcessingUseCase(
	describer interfaces.IDescriptionGenerator,
	embedder interfaces.IEmbedder,
	searcher interfaces.ISimilaritySearcher,
	agent interfaces.IEstimationAgent,
	repo interfaces.ICaseRepository,
	opts ...CaseProcessingOption,
) *CaseProcessingUseCase {
	u := &CaseProcessingUseCase{
		describer: describer,
		embedder:  embedder,
		searcher:  searcher,
		agent:     agent,
		repo:      repo,
		query:     entities.DefaultSimilarityQuery(),
		tracer:    otel.Tracer("damage_triage/usecase"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *CaseProcessingUseCase) ProcessCase(ctx context.Context, c entities.Case) (entities.Case, error) {
	c.Description = strings.TrimSpace(c.Description)
	if c.Description == "" {
		return entities.Case{}, ErrInvalidDescription
	}
	if len(c.CaseImages) == 0 {
		return entities.Case{}, ErrMissingImages
	}
	for _, img := range c.CaseImages {
		if strings.TrimSpace(img.PublicURL) == "" {
			return entities.Case{}, ErrInvalidCaseImage
		}
	}
	if c.CaseStatus == "" {
		c.CaseStatus = entities.CaseStatusCreated
	}

	ctx, span := u.tracer.Start(ctx, "case.process", trace.WithAttributes(
		attribute.Int("case.images", len(c.CaseImages)),
		attribute.Bool("case.save", c.SaveToDB),
	))
	defer span.End()

	log.Printf("[case][usecase] process start images=%d category=%q save=%t", len(c.CaseImages), c.Category, c.SaveToDB)

	aiDescription, err := traced(ctx, u.tracer, "case.describe", func(ctx context.Context) (string, error) {
		return u.describer.Describe(ctx, c.CaseImages, c.Description)
	})
	if err != nil {
		return u.fail(span, "describe", fmt.Errorf("%w: %w", ErrDescriptionFailed, err))
	}
	aiDescription = strings.TrimSpace(aiDescription)
	if aiDescription == "" {
		return u.fail(span, "describe", fmt.Errorf("%w: empty description", ErrDescriptionFailed))
	}

	vector, err := traced(ctx, u.tracer, "case.embed", func(ctx context.Context) ([]float32, error) {
		return u.embedder.Embed(ctx, aiDescription)
	})
	if err != nil {
		return u.fail(span, "embed", fmt.Errorf("%w: %w", ErrEmbeddingFailed, err))
	}
	if len(vector) == 0 {
		return u.fail(span, "embed", fmt.Errorf("%w: empty vector", ErrEmbeddingFailed))
	}
	c.AIImageDescription = aiDescription
	c.Vector = vector

	q := u.query
	q.ExcludeID = c.ID
	matches, err := traced(ctx, u.tracer, "case.similarity", func(ctx context.Context) ([]entities.SimilarCaseMatch, error) {
		return u.searcher.Search(ctx, vector, q)
	})
	if err != nil {
		// Degraded: estimate without similar cases.
		log.Printf("[case][usecase] similarity search failed, continuing without similar cases err=%v", err)
		matches = nil
	}
	matches = sanitizeMatches(matches, q)

	in := interfaces.EstimationInput{
		Images:             c.CaseImages,
		Description:        c.Description,
		AIImageDescription: aiDescription,
		SimilarCases:       matches,
		PriceLookup:        u.priceLookup,
	}
	res, err := traced(ctx, u.tracer, "case.estimate", func(ctx context.Context) (interfaces.EstimationResult, error) {
		return u.agent.Estimate(ctx, in)
	})
	if err != nil {
		return u.fail(span, "estimate", fmt.Errorf("%w: %w", ErrEstimationFailed, err))
	}
	amount, err := parseEstimation(res.Text)
	if err != nil {
		return u.fail(span, "parse", err)
	}
	if u.roundTo > 0 {
		amount = math.Round(amount/u.roundTo) * u.roundTo
	}
	c.Estimation = &amount
	c.Sources = res.Sources
	c.ProviderMetadata = res.ProviderMetadata

	c.SimilarCases = make([]entities.SimilarCase, 0, len(matches))
	for _, m := range matches {
		c.SimilarCases = append(c.SimilarCases, entities.SimilarCase{SimilarCaseID: m.CaseID, Similarity: m.Similarity})
	}
	span.SetAttributes(attribute.Float64("case.estimation", amount), attribute.Int("case.similar", len(matches)))

	if !c.SaveToDB {
		log.Printf("[case][usecase] process done (not saved) estimation=%.2f similar=%d", amount, len(matches))
		return c, nil
	}

	stored, err := u.repo.Create(ctx, c)
	if err != nil {
		return u.fail(span, "store", fmt.Errorf("%w: %w", ErrCaseStoreFailed, err))
	}
	stored.SaveToDB = true
	log.Printf("[case][usecase] process done case_id=%s estimation=%.2f similar=%d", stored.ID, amount, len(matches))

	if u.events != nil {
		if err := u.events.CaseCreated(ctx, stored); err != nil {
			log.Printf("[case][usecase] publish created event failed case_id=%s err=%v", stored.ID, err)
		}
	}
	return stored, nil
}

func (u *CaseProcessingUseCase) fail(span trace.Span, stage string, err error) (entities.Case, error) {
	log.Printf("[case][usecase] process failed stage=%s err=%v", stage, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return entities.Case{}, err
}

func traced[T any](ctx context.Context, tracer trace.Tracer, name string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()
	out, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

// sanitizeMatches enforces the search contract on whatever the searcher
// returned: no self match, nothing under the threshold, best first, capped at Limit.
func sanitizeMatches(in []entities.SimilarCaseMatch, q entities.SimilarityQuery) []entities.SimilarCaseMatch {
	out := make([]entities.SimilarCaseMatch, 0, len(in))
	for _, m := range in {
		if m.CaseID == "" || (q.ExcludeID != "" && m.CaseID == q.ExcludeID) {
			continue
		}
		if !q.Admits(m.Similarity) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].CaseID < out[j].CaseID
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

var bareAmount = regexp.MustCompile(`^\d+(\.\d+)?$`)

// parseEstimation accepts the agent's bare number. Thousands separators
// (spaces, apostrophes) and a CHF prefix or suffix are tolerated. Anything
// but a plain decimal is rejected instead of being read as zero.
func parseEstimation(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "CHF"), "CHF")
	s = strings.NewReplacer(" ", "", "'", "", "’", "", " ", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty answer", ErrUnparseableEstimation)
	}
	if !bareAmount.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableEstimation, truncate(text, 80))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableEstimation, truncate(text, 80))
	}
	return v, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
