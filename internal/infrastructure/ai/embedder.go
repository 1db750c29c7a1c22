package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"damage_triage/internal/usecase/interfaces"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Embedder calls an embeddings endpoint. The OpenAI shape ({"data":[{"embedding"}]})
// and the Ollama shape ({"embedding"}) are both understood.
type Embedder struct {
	client   *Client
	model    string
	provider string
}

var _ interfaces.IEmbedder = (*Embedder)(nil)

func NewEmbedder(client *Client, model, provider string) *Embedder {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &Embedder{client: client, model: model, provider: provider}
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Embedding []float32 `json:"embedding"`
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("embed: empty text")
	}

	var (
		endpoint string
		body     any
	)
	switch e.provider {
	case ProviderOllama:
		endpoint = e.client.baseURL + "/api/embeddings"
		body = map[string]string{"model": e.model, "prompt": text}
	default:
		endpoint = e.client.endpoint(e.model, "embeddings")
		body = map[string]string{"model": e.model, "input": text}
	}

	var out embeddingResponse
	if err := e.client.postJSON(ctx, endpoint, body, &out); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(out.Data) > 0 && len(out.Data[0].Embedding) > 0 {
		return out.Data[0].Embedding, nil
	}
	if len(out.Embedding) > 0 {
		return out.Embedding, nil
	}
	return nil, errors.New("embed: response carried no embedding")
}
