package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"damage_triage/internal/domain/entities"
)

func TestFromCase(t *testing.T) {
	est := 1340.0
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	c := entities.Case{
		ID:                 "case-1",
		CreatedAt:          now,
		Description:        "hit a pole",
		Category:           "motor",
		CaseImages:         []entities.CaseImage{{ImageID: "a", PublicURL: "https://cdn/a.jpg"}},
		AIImageDescription: "rear bumper cracked",
		Vector:             []float32{0.1, 0.2},
		Estimation:         &est,
		SimilarCases:       []entities.SimilarCase{{SimilarCaseID: "old", Similarity: 0.91}},
		Sources:            json.RawMessage(`[{"tool":"lookup_market_prices"}]`),
		CaseStatus:         entities.CaseStatusCreated,
	}

	resp := FromCase(c)
	if !resp.Saved || resp.CreatedAt == nil || *resp.Estimation != 1340 || resp.SimilarCases[0].SimilarCaseID != "old" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(body), "vector") {
		t.Fatalf("vector must not be exposed: %s", body)
	}
	if !strings.Contains(string(body), `"sources":[{"tool":"lookup_market_prices"}]`) {
		t.Fatalf("sources must pass through untouched: %s", body)
	}
}

func TestFromCase_Unsaved(t *testing.T) {
	resp := FromCase(entities.Case{Description: "x", CaseStatus: entities.CaseStatusCreated})
	if resp.Saved || resp.CreatedAt != nil || resp.ID != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.CaseImages == nil || resp.SimilarCases == nil {
		t.Fatalf("lists must serialize as []")
	}
}

func TestFromCases_Empty(t *testing.T) {
	body, _ := json.Marshal(FromCases(nil))
	if string(body) != "[]" {
		t.Fatalf("expected [], got %s", body)
	}
}
