package vectorindex

import (
	"context"
	"errors"
	"math"
	"sync"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
)

// MemoryIndex is a brute-force cosine index kept in process memory.
// It serves local development and tests; contents are lost on restart and
// rebuilt with Warm.
type MemoryIndex struct {
	mu    sync.RWMutex
	cases map[string]entities.IndexedCase
}

var _ interfaces.ICaseIndex = (*MemoryIndex)(nil)

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{cases: map[string]entities.IndexedCase{}}
}

func (m *MemoryIndex) Upsert(_ context.Context, c entities.IndexedCase) error {
	if c.CaseID == "" || len(c.Vector) == 0 {
		return errors.New("vectorindex: case id and vector are required")
	}
	vec := make([]float32, len(c.Vector))
	copy(vec, c.Vector)
	c.Vector = vec

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[c.CaseID] = c
	return nil
}

func (m *MemoryIndex) Delete(_ context.Context, caseID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cases, caseID)
	return nil
}

func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cases)
}

func (m *MemoryIndex) Search(_ context.Context, vector []float32, q entities.SimilarityQuery) ([]entities.SimilarCaseMatch, error) {
	if q.Limit <= 0 {
		return []entities.SimilarCaseMatch{}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.SimilarCaseMatch, 0, q.Limit)
	for id, c := range m.cases {
		if id == q.ExcludeID || len(c.Vector) != len(vector) {
			continue
		}
		sim := cosine(vector, c.Vector)
		if !q.Admits(sim) {
			continue
		}
		out = append(out, entities.SimilarCaseMatch{
			CaseID:             id,
			Similarity:         sim,
			Estimation:         c.Estimation,
			AIImageDescription: c.AIImageDescription,
			Description:        c.Description,
			CaseStatus:         string(c.CaseStatus),
		})
	}
	return rank(out, q.Limit), nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
