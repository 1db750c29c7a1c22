package entities

// SimilarityQuery parameterizes a nearest-neighbour lookup.
type SimilarityQuery struct {
	// Threshold is the minimum similarity (0..1) a match must reach.
	Threshold float64
	// Limit caps the number of matches returned.
	Limit int
	// ExcludeID is the id of the case being processed, when already known.
	ExcludeID string
}

const (
	DefaultSimilarityThreshold = 0.78
	DefaultSimilarityLimit     = 3
)

// DefaultSimilarityQuery returns the design defaults (threshold 0.78, top 3).
func DefaultSimilarityQuery() SimilarityQuery {
	return SimilarityQuery{Threshold: DefaultSimilarityThreshold, Limit: DefaultSimilarityLimit}
}

// Admits reports whether a similarity reaches the threshold. Scores come from
// float32 vectors, so the comparison is made at float32 precision.
func (q SimilarityQuery) Admits(similarity float64) bool {
	return float32(similarity) >= float32(q.Threshold)
}

// SimilarCaseMatch is a search hit enriched with what the index knows about the
// matched case, so the estimation agent can anchor on its history.
type SimilarCaseMatch struct {
	CaseID             string   `json:"case_id"`
	Similarity         float64  `json:"similarity"`
	Estimation         *float64 `json:"estimation,omitempty"`
	AIImageDescription string   `json:"ai_image_description,omitempty"`
	Description        string   `json:"description,omitempty"`
	CaseStatus         string   `json:"case_status,omitempty"`
}

// IndexedCase is the projection of a stored case written to the vector index.
type IndexedCase struct {
	CaseID             string
	Vector             []float32
	Estimation         *float64
	AIImageDescription string
	Description        string
	CaseStatus         CaseStatus
}

// NewIndexedCase projects a stored case into its index representation.
func NewIndexedCase(c Case) IndexedCase {
	return IndexedCase{
		CaseID:             c.ID,
		Vector:             c.Vector,
		Estimation:         c.Estimation,
		AIImageDescription: c.AIImageDescription,
		Description:        c.Description,
		CaseStatus:         c.CaseStatus,
	}
}
