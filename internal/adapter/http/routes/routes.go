package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "damage_triage/docs" // generated by swag init
	"damage_triage/internal/adapter/http/handlers"
	"damage_triage/internal/adapter/http/middleware"
	"damage_triage/internal/adapter/persistence/repository"
	"damage_triage/internal/config"
	"damage_triage/internal/infrastructure/ai"
	"damage_triage/internal/infrastructure/database"
	"damage_triage/internal/infrastructure/events"
	"damage_triage/internal/infrastructure/pricing"
	"damage_triage/internal/infrastructure/vectorindex"
	"damage_triage/internal/usecase"
	"damage_triage/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Run wires the service from the environment and serves until SIGINT/SIGTERM.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	deps, cleanup, err := build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(NewRouter(deps), "damage-triage"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening port=%s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	case <-ctx.Done():
		log.Printf("[http][server] shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Printf("[http][server] shutdown failed err=%v", err)
	}
}

// Dependencies are the handlers the router serves.
type Dependencies struct {
	Cases              *handlers.CaseHandler
	Prices             *handlers.PriceHandler
	RateLimitPerMinute int
	TrustedProxies     []string
}

// NewRouter registers middlewares and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Printf("[http][router] invalid trusted proxies, trusting none err=%v", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.RequestID(), gin.Logger(), middleware.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, deps.Cases, deps.Prices, middleware.RateLimit(deps.RateLimitPerMinute))
	return router
}

func build(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (Dependencies, func(), error) {
		cleanup()
		return Dependencies{}, func() {}, err
	}

	policy, err := config.LoadEstimationPolicy(cfg.EstimationPolicyFile)
	if err != nil {
		return fail(fmt.Errorf("estimation policy: %w", err))
	}

	aiClient, err := ai.NewClient(ai.Config{
		BaseURL:           cfg.AI.BaseURL,
		APIKey:            cfg.AI.APIKey,
		APIVersion:        cfg.AI.APIVersion,
		RequestsPerMinute: cfg.AI.RequestsPerMinute,
		Timeout:           cfg.AI.Timeout,
	})
	if err != nil {
		return fail(err)
	}

	index, err := newCaseIndex(ctx, cfg, &closers)
	if err != nil {
		return fail(err)
	}

	ddb := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	caseRepo := repository.NewCaseDynamoRepository(ddb,
		repository.WithTableName(cfg.CasesTable),
		repository.WithCaseIndex(index),
	)

	if mem, ok := index.(*vectorindex.MemoryIndex); ok {
		n, err := vectorindex.Warm(ctx, caseRepo, mem)
		if err != nil {
			log.Printf("[index][warmup] failed err=%v", err)
		} else {
			log.Printf("[index][warmup] loaded cases=%d", n)
		}
	}

	var publisher interfaces.ICaseEventPublisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		nc, err := events.Connect(cfg.NATSURL)
		if err != nil {
			log.Printf("[events][nats] not connected, events disabled err=%v", err)
		} else {
			closers = append(closers, func() { _ = nc.Drain() })
			publisher = events.NewNATSPublisher(nc)
		}
	}

	processingOpts := []usecase.CaseProcessingOption{
		usecase.WithEventPublisher(publisher),
		usecase.WithSimilarityQuery(cfg.Similarity),
		usecase.WithEstimateRounding(policy.RoundingStep),
	}

	var priceUseCase *usecase.PriceUseCase
	if cfg.PriceLookupEnabled {
		serp, err := pricing.NewSerpAPIClient(cfg.SerpAPIKey)
		if err != nil {
			return fail(err)
		}
		processingOpts = append(processingOpts, usecase.WithPriceLookup(serp))
		priceUseCase = usecase.NewPriceUseCase(
			pricing.NewHTTPImageFetcher(pricing.DefaultMaxImageBytes),
			ai.NewProductIdentifier(aiClient, cfg.AI.VisionModel),
			serp,
			usecase.WithProductDetector(serp),
		)
	} else {
		log.Printf("[price][setup] SERPAPI_KEY not set, price lookup disabled")
		priceUseCase = usecase.NewPriceUseCase(nil, nil, nil)
	}

	processing := usecase.NewCaseProcessingUseCase(
		ai.NewDescriber(aiClient, cfg.AI.VisionModel),
		ai.NewEmbedder(aiClient, cfg.AI.EmbeddingModel, cfg.AI.EmbeddingProvider),
		index,
		ai.NewEstimationAgent(aiClient, cfg.AI.ChatModel, policy),
		caseRepo,
		processingOpts...,
	)
	cases := usecase.NewCaseUseCase(caseRepo, publisher)

	return Dependencies{
		Cases:              handlers.NewCaseHandler(processing, cases),
		Prices:             handlers.NewPriceHandler(priceUseCase),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		TrustedProxies:     cfg.TrustedProxies,
	}, cleanup, nil
}

func newCaseIndex(ctx context.Context, cfg config.Config, closers *[]func()) (interfaces.ICaseIndex, error) {
	switch cfg.VectorStore {
	case config.VectorStoreQdrant:
		q, err := vectorindex.NewQdrantIndex(cfg.QdrantAddr, cfg.QdrantCollection)
		if err != nil {
			return nil, fmt.Errorf("qdrant connect: %w", err)
		}
		*closers = append(*closers, func() { _ = q.Close() })
		if err := q.EnsureCollection(ctx, cfg.EmbeddingDims); err != nil {
			return nil, fmt.Errorf("qdrant collection: %w", err)
		}
		return q, nil
	case config.VectorStoreMemory, "":
		return vectorindex.NewMemoryIndex(), nil
	default:
		return nil, fmt.Errorf("unknown VECTOR_STORE %q", cfg.VectorStore)
	}
}
