package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"damage_triage/internal/domain/entities"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "AI_CHAT_MODEL", "AI_VISION_MODEL", "VECTOR_STORE", "SIMILARITY_THRESHOLD", "SIMILARITY_LIMIT", "SERPAPI_KEY", "PRICE_LOOKUP_ENABLED", "NATS_URL", "TRUSTED_PROXIES"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		if cfg.Port != "8080" || cfg.VectorStore != VectorStoreMemory || cfg.CasesTable == "" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.AI.VisionModel != cfg.AI.ChatModel {
			t.Fatalf("vision model should default to the chat model")
		}
		if cfg.Similarity.Threshold != 0.78 || cfg.Similarity.Limit != 3 {
			t.Fatalf("unexpected similarity defaults: %+v", cfg.Similarity)
		}
		if cfg.PriceLookupEnabled {
			t.Fatalf("price lookup needs an api key")
		}
		if cfg.TrustedProxies != nil {
			t.Fatalf("no proxy should be trusted by default, got %v", cfg.TrustedProxies)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("VECTOR_STORE", "Qdrant")
		t.Setenv("AI_EMBEDDING_PROVIDER", "OLLAMA")
		t.Setenv("AI_VISION_MODEL", "gpt-4o")
		t.Setenv("AI_TIMEOUT_SECONDS", "30")
		t.Setenv("SIMILARITY_THRESHOLD", "0.85")
		t.Setenv("SIMILARITY_LIMIT", "bogus")
		t.Setenv("SERPAPI_KEY", "k")
		t.Setenv("PRICE_LOOKUP_ENABLED", "")
		t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.168.1.10 ")

		cfg := Load()
		if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" || cfg.TrustedProxies[1] != "192.168.1.10" {
			t.Fatalf("unexpected trusted proxies: %v", cfg.TrustedProxies)
		}
		if cfg.Port != "9090" || cfg.VectorStore != VectorStoreQdrant || cfg.AI.EmbeddingProvider != "ollama" || cfg.AI.VisionModel != "gpt-4o" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.AI.Timeout != 30*time.Second {
			t.Fatalf("unexpected timeout %v", cfg.AI.Timeout)
		}
		if cfg.Similarity.Threshold != 0.85 || cfg.Similarity.Limit != 3 {
			t.Fatalf("unexpected similarity: %+v", cfg.Similarity)
		}
		if !cfg.PriceLookupEnabled {
			t.Fatalf("price lookup should follow the api key")
		}

		t.Setenv("PRICE_LOOKUP_ENABLED", "false")
		if Load().PriceLookupEnabled {
			t.Fatalf("explicit false must win")
		}
	})
}

func TestLoadEstimationPolicy(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path and missing file", func(t *testing.T) {
		for _, p := range []string{"", filepath.Join(dir, "nope.yaml")} {
			policy, err := LoadEstimationPolicy(p)
			if err != nil || policy.Currency != "CHF" || policy.TaxRate != 0.081 {
				t.Fatalf("%q: expected defaults, got %+v, %v", p, policy, err)
			}
		}
	})

	t.Run("partial override keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "de.yaml")
		yml := "market: Germany\ncurrency: EUR\nlabor_rate: 120\ntax_rate: 0.19\npart_prices:\n  - name: Bumper cover\n    min: 300\n    max: 900\n"
		if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
			t.Fatal(err)
		}
		policy, err := LoadEstimationPolicy(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if policy.Market != "Germany" || policy.Currency != "EUR" || policy.LaborRate != 120 || policy.TaxRate != 0.19 {
			t.Fatalf("overrides not applied: %+v", policy)
		}
		if len(policy.PartPrices) != 1 || policy.PartPrices[0].Max != 900 {
			t.Fatalf("unexpected part prices: %+v", policy.PartPrices)
		}
		if policy.RoundingStep != 10 || len(policy.LaborHours) == 0 {
			t.Fatalf("defaults lost: %+v", policy)
		}
	})

	t.Run("invalid policy", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("tax_rate: 1.5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadEstimationPolicy(path); !errors.Is(err, entities.ErrInvalidEstimationPolicy) {
			t.Fatalf("expected ErrInvalidEstimationPolicy, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("labor_rate: [1,\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadEstimationPolicy(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
