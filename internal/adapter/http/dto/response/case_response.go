package response

import (
	"damage_triage/internal/domain/entities"
	"encoding/json"
	"time"
)

type CaseImageResponse struct {
	ImageID   string `json:"image_id"`
	PublicURL string `json:"image_public_url"`
}

type SimilarCaseResponse struct {
	SimilarCaseID string  `json:"similar_case_id"`
	Similarity    float64 `json:"similarity"`
}

// CaseResponse mirrors the stored case. The embedding vector is left out.
type CaseResponse struct {
	ID                 string                `json:"id,omitempty"`
	CreatedAt          *time.Time            `json:"created_at,omitempty"`
	Description        string                `json:"description"`
	Category           string                `json:"category"`
	CaseImages         []CaseImageResponse   `json:"case_images"`
	AIImageDescription string                `json:"ai_image_description,omitempty"`
	Estimation         *float64              `json:"estimation"`
	SimilarCases       []SimilarCaseResponse `json:"similar_cases"`
	Sources            json.RawMessage       `json:"sources,omitempty"`
	ProviderMetadata   json.RawMessage       `json:"provider_metadata,omitempty"`
	CaseStatus         string                `json:"case_status"`
	Saved              bool                  `json:"saved"`
}

func FromCase(c entities.Case) CaseResponse {
	resp := CaseResponse{
		ID:                 c.ID,
		Description:        c.Description,
		Category:           c.Category,
		CaseImages:         make([]CaseImageResponse, 0, len(c.CaseImages)),
		AIImageDescription: c.AIImageDescription,
		Estimation:         c.Estimation,
		SimilarCases:       make([]SimilarCaseResponse, 0, len(c.SimilarCases)),
		Sources:            c.Sources,
		ProviderMetadata:   c.ProviderMetadata,
		CaseStatus:         string(c.CaseStatus),
		Saved:              c.IsPersisted(),
	}
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		resp.CreatedAt = &createdAt
	}
	for _, img := range c.CaseImages {
		resp.CaseImages = append(resp.CaseImages, CaseImageResponse{ImageID: img.ImageID, PublicURL: img.PublicURL})
	}
	for _, s := range c.SimilarCases {
		resp.SimilarCases = append(resp.SimilarCases, SimilarCaseResponse{SimilarCaseID: s.SimilarCaseID, Similarity: s.Similarity})
	}
	return resp
}

func FromCases(cases []entities.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, FromCase(c))
	}
	return out
}
