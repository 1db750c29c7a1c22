package interfaces

import (
	"context"
	"damage_triage/internal/domain/entities"
)

// ISimilaritySearcher runs nearest-neighbour lookups over stored case vectors.
// It is read-only. Results are sorted by descending similarity, never exceed
// q.Limit, never fall below q.Threshold and never include q.ExcludeID.
type ISimilaritySearcher interface {
	Search(ctx context.Context, vector []float32, q entities.SimilarityQuery) ([]entities.SimilarCaseMatch, error)
}

// ICaseIndex maintains the searchable projection of stored cases.
type ICaseIndex interface {
	ISimilaritySearcher
	Upsert(ctx context.Context, c entities.IndexedCase) error
	Delete(ctx context.Context, caseID string) error
}
