// Package config reads service settings from the environment and the
// estimation policy from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"damage_triage/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

const (
	VectorStoreQdrant = "qdrant"
	VectorStoreMemory = "memory"
)

type AIConfig struct {
	BaseURL           string
	APIKey            string
	APIVersion        string
	ChatModel         string
	VisionModel       string
	EmbeddingModel    string
	EmbeddingProvider string
	RequestsPerMinute int
	Timeout           time.Duration
}

type Config struct {
	Port               string
	RateLimitPerMinute int
	// TrustedProxies lists the proxies whose X-Forwarded-For is honoured.
	// Empty means the socket peer is the client.
	TrustedProxies []string

	AWSRegion        string
	DynamoDBEndpoint string
	CasesTable       string

	AI AIConfig

	VectorStore      string
	QdrantAddr       string
	QdrantCollection string
	EmbeddingDims    int

	Similarity entities.SimilarityQuery

	SerpAPIKey         string
	PriceLookupEnabled bool

	NATSURL string

	EstimationPolicyFile string
}

// Load reads the environment. Unset or malformed values fall back to defaults.
func Load() Config {
	visionModel := getenvDefault("AI_VISION_MODEL", "")
	chatModel := getenvDefault("AI_CHAT_MODEL", "gpt-5")
	if visionModel == "" {
		visionModel = chatModel
	}

	cfg := Config{
		Port:             getenvDefault("PORT", "8080"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		CasesTable:       getenvDefault("CASES_TABLE", "cases"),
		AI: AIConfig{
			BaseURL:           getenvDefault("AI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:            os.Getenv("AI_API_KEY"),
			APIVersion:        os.Getenv("AI_API_VERSION"),
			ChatModel:         chatModel,
			VisionModel:       visionModel,
			EmbeddingModel:    getenvDefault("AI_EMBEDDING_MODEL", "text-embedding-3-large"),
			EmbeddingProvider: strings.ToLower(getenvDefault("AI_EMBEDDING_PROVIDER", "openai")),
			RequestsPerMinute: getenvInt("AI_REQUESTS_PER_MINUTE", 0),
			Timeout:           time.Duration(getenvInt("AI_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		VectorStore:      strings.ToLower(getenvDefault("VECTOR_STORE", VectorStoreMemory)),
		QdrantAddr:       getenvDefault("QDRANT_ADDR", "localhost:6334"),
		QdrantCollection: getenvDefault("QDRANT_COLLECTION", "cases"),
		EmbeddingDims:    getenvInt("EMBEDDING_DIMENSIONS", 3072),
		Similarity: entities.SimilarityQuery{
			Threshold: getenvFloat("SIMILARITY_THRESHOLD", entities.DefaultSimilarityThreshold),
			Limit:     getenvInt("SIMILARITY_LIMIT", entities.DefaultSimilarityLimit),
		},
		SerpAPIKey:           os.Getenv("SERPAPI_KEY"),
		NATSURL:              os.Getenv("NATS_URL"),
		EstimationPolicyFile: os.Getenv("ESTIMATION_POLICY_FILE"),
	}
	cfg.RateLimitPerMinute = getenvInt("RATE_LIMIT_PER_MINUTE", 0)
	cfg.TrustedProxies = getenvList("TRUSTED_PROXIES")
	cfg.PriceLookupEnabled = getenvBool("PRICE_LOOKUP_ENABLED", cfg.SerpAPIKey != "") && cfg.SerpAPIKey != ""
	return cfg
}

// LoadEstimationPolicy reads a YAML policy on top of the Swiss defaults.
// An empty path or a missing file yields the defaults.
func LoadEstimationPolicy(path string) (entities.EstimationPolicy, error) {
	policy := entities.DefaultEstimationPolicy()
	if strings.TrimSpace(path) == "" {
		return policy, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return policy, nil
		}
		return entities.EstimationPolicy{}, err
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return entities.EstimationPolicy{}, fmt.Errorf("parse estimation policy %s: %w", path, err)
	}
	if err := policy.Validate(); err != nil {
		return entities.EstimationPolicy{}, err
	}
	return policy, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenvDefault(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
