package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
)

const (
	marketPriceTool      = "lookup_market_prices"
	defaultMaxToolRounds = 3
	defaultToolLimit     = 5
	maxToolLimit         = 10
)

var marketPriceToolDef = toolDefinition{
	Type: "function",
	Function: toolFunction{
		Name:        marketPriceTool,
		Description: "Look up current market offers for a spare part or product. Returns titles, prices and shops.",
		Parameters: json.RawMessage(`{
  "type": "object",
  "properties": {
    "product_name": {"type": "string", "description": "Precise part name incl. vehicle make and model"},
    "limit": {"type": "integer", "minimum": 1, "maximum": 10}
  },
  "required": ["product_name"]
}`),
	},
}

// EstimationAgent asks the chat model for a single grounded repair cost.
// When the input carries a price lookup the model may call it as a tool for a
// bounded number of rounds; offers it saw are returned as Sources.
type EstimationAgent struct {
	client        *Client
	model         string
	policy        entities.EstimationPolicy
	maxToolRounds int
}

var _ interfaces.IEstimationAgent = (*EstimationAgent)(nil)

func NewEstimationAgent(client *Client, model string, policy entities.EstimationPolicy) *EstimationAgent {
	return &EstimationAgent{client: client, model: model, policy: policy, maxToolRounds: defaultMaxToolRounds}
}

type toolSource struct {
	Tool    string                 `json:"tool"`
	Query   string                 `json:"query"`
	Results []entities.MarketPrice `json:"results"`
	Error   string                 `json:"error,omitempty"`
}

type providerMetadata struct {
	Provider     string            `json:"provider"`
	Model        string            `json:"model"`
	ResponseIDs  []string          `json:"response_ids"`
	FinishReason string            `json:"finish_reason"`
	ToolRounds   int               `json:"tool_rounds"`
	Usage        []json.RawMessage `json:"usage,omitempty"`
}

func (a *EstimationAgent) Estimate(ctx context.Context, in interfaces.EstimationInput) (interfaces.EstimationResult, error) {
	withTools := in.PriceLookup != nil
	system, err := RenderEstimationPrompt(a.policy, withTools)
	if err != nil {
		return interfaces.EstimationResult{}, fmt.Errorf("render prompt: %w", err)
	}

	similar, err := json.Marshal(in.SimilarCases)
	if err != nil {
		return interfaces.EstimationResult{}, err
	}
	user := append(imageParts(in.Images),
		textPart("USER DESCRIPTION: "+in.Description),
		textPart("AI GENERATED DESCRIPTION OF THE IMAGES: "+in.AIImageDescription),
		textPart("SIMILAR CASES FOUND: "+string(similar)),
	)

	req := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if withTools {
		req.Tools = []toolDefinition{marketPriceToolDef}
	}

	meta := providerMetadata{Provider: "openai-compatible", Model: a.model}
	var sources []toolSource
	for round := 0; ; round++ {
		if withTools && round >= a.maxToolRounds {
			req.ToolChoice = "none"
		}
		resp, err := a.client.chat(ctx, req)
		if err != nil {
			return interfaces.EstimationResult{}, err
		}
		choice := resp.Choices[0]
		meta.ResponseIDs = append(meta.ResponseIDs, resp.ID)
		meta.FinishReason = choice.FinishReason
		if resp.Model != "" {
			meta.Model = resp.Model
		}
		if len(resp.Usage) > 0 {
			meta.Usage = append(meta.Usage, resp.Usage)
		}

		if len(choice.Message.ToolCalls) == 0 || !withTools || req.ToolChoice == "none" {
			meta.ToolRounds = round
			text := cleanAnswer(choice.Message.Content)
			log.Printf("[ai][estimator] estimate done rounds=%d similar=%d answer=%q", round, len(in.SimilarCases), text)
			return interfaces.EstimationResult{
				Text:             text,
				Sources:          marshalOrNil(sources),
				ProviderMetadata: marshalOrNil(meta),
			}, nil
		}

		req.Messages = append(req.Messages, chatMessage{Role: "assistant", ToolCalls: choice.Message.ToolCalls})
		for _, call := range choice.Message.ToolCalls {
			src, result := a.runTool(ctx, in.PriceLookup, call)
			sources = append(sources, src)
			req.Messages = append(req.Messages, chatMessage{Role: "tool", ToolCallID: call.ID, Content: result})
		}
	}
}

// runTool executes one tool call. Failures are reported back to the model as
// tool output so it can fall back to the policy bands.
func (a *EstimationAgent) runTool(ctx context.Context, lookup interfaces.IMarketPriceLookup, call toolCall) (toolSource, string) {
	src := toolSource{Tool: call.Function.Name}
	if call.Function.Name != marketPriceTool {
		src.Error = "unknown tool"
		return src, `{"error":"unknown tool"}`
	}

	var args struct {
		ProductName string `json:"product_name"`
		Limit       int    `json:"limit"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil || strings.TrimSpace(args.ProductName) == "" {
		src.Error = "invalid arguments"
		return src, `{"error":"product_name is required"}`
	}
	if args.Limit <= 0 {
		args.Limit = defaultToolLimit
	}
	if args.Limit > maxToolLimit {
		args.Limit = maxToolLimit
	}
	src.Query = args.ProductName

	prices, err := lookup.LookupMarketPrices(ctx, args.ProductName, args.Limit)
	if err != nil {
		log.Printf("[ai][estimator] price tool failed query=%q err=%v", args.ProductName, err)
		src.Error = err.Error()
		return src, `{"error":"price lookup unavailable"}`
	}
	if prices == nil {
		prices = []entities.MarketPrice{}
	}
	src.Results = prices
	out, _ := json.Marshal(map[string]any{"product_name": args.ProductName, "offers": prices})
	return src, string(out)
}

func marshalOrNil(v any) json.RawMessage {
	switch t := v.(type) {
	case []toolSource:
		if len(t) == 0 {
			return nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
