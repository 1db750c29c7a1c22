package entities

import (
	"encoding/json"
	"time"
)

// CaseStatus represents the review lifecycle of a damage case.
//
// Domain notes:
//   - created/pending are open states; approved/declined are terminal.
//   - A terminal status never reverts. Re-applying the current status is a no-op.
type CaseStatus string

const (
	CaseStatusCreated  CaseStatus = "created"
	CaseStatusPending  CaseStatus = "pending"
	CaseStatusApproved CaseStatus = "approved"
	CaseStatusDeclined CaseStatus = "declined"
)

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusCreated, CaseStatusPending, CaseStatusApproved, CaseStatusDeclined:
		return true
	}
	return false
}

func (s CaseStatus) IsTerminal() bool {
	return s == CaseStatusApproved || s == CaseStatusDeclined
}

// CanTransitionTo reports whether a reviewer decision may move a case from s to next.
// Same-status transitions are allowed so that status updates stay idempotent.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	if s == next {
		return true
	}
	if !next.IsTerminal() {
		return false
	}
	return s == CaseStatusCreated || s == CaseStatusPending || s == ""
}

// CaseImage references an uploaded photo. Index 0 of Case.CaseImages is the cover image.
type CaseImage struct {
	ImageID   string `json:"image_id"`
	PublicURL string `json:"image_public_url"`
}

// SimilarCase is a similarity edge from a case to a previously stored case.
type SimilarCase struct {
	SimilarCaseID string  `json:"similar_case_id"`
	Similarity    float64 `json:"similarity"`
}

// Case is one damage claim submission plus everything the pipeline derives from it.
//
// Storage model (DynamoDB, single table):
//   - PK: case_id, SK: "CASE" | "IMAGE#<n>" | "SIMILAR#<n>"
//
// Derived fields:
//   - AIImageDescription and Vector are produced together; one is set iff the other is.
//   - Estimation stays nil until the estimation stage has succeeded.
//   - Sources and ProviderMetadata are provider-specific cargo and are never interpreted.
type Case struct {
	ID                 string          `json:"id"`
	CreatedAt          time.Time       `json:"created_at"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	CaseImages         []CaseImage     `json:"case_images"`
	AIImageDescription string          `json:"ai_image_description,omitempty"`
	Vector             []float32       `json:"vector"`
	Estimation         *float64        `json:"estimation"`
	SimilarCases       []SimilarCase   `json:"similar_cases"`
	Sources            json.RawMessage `json:"sources,omitempty"`
	ProviderMetadata   json.RawMessage `json:"provider_metadata,omitempty"`
	CaseStatus         CaseStatus      `json:"case_status"`

	// SaveToDB controls whether processing persists the case. It is never stored.
	SaveToDB bool `json:"-"`
}

// IsPersisted reports whether the store has assigned an identity to the case.
func (c Case) IsPersisted() bool {
	return c.ID != "" && !c.CreatedAt.IsZero()
}
