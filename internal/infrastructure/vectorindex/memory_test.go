package vectorindex

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"damage_triage/internal/domain/entities"
	mock_interfaces "damage_triage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMemoryIndex_Search(t *testing.T) {
	ctx := context.Background()
	idx := NewMemoryIndex()
	est := 300.0
	for _, c := range []entities.IndexedCase{
		{CaseID: "same", Vector: []float32{1, 0, 0}, Estimation: &est},
		{CaseID: "near-b", Vector: []float32{0.9, 0.1, 0}},
		{CaseID: "near-a", Vector: []float32{0.9, 0.1, 0}},
		{CaseID: "far", Vector: []float32{0, 1, 0}},
		{CaseID: "other-dims", Vector: []float32{1, 0}},
	} {
		if err := idx.Upsert(ctx, c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("threshold, order and ties", func(t *testing.T) {
		got, err := idx.Search(ctx, []float32{1, 0, 0}, entities.SimilarityQuery{Threshold: 0.78, Limit: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].CaseID != "same" || got[1].CaseID != "near-a" || got[2].CaseID != "near-b" {
			t.Fatalf("unexpected matches: %+v", got)
		}
		if got[0].Estimation == nil || *got[0].Estimation != 300 {
			t.Fatalf("expected stored estimation on match")
		}
	})

	t.Run("exclusion", func(t *testing.T) {
		got, _ := idx.Search(ctx, []float32{1, 0, 0}, entities.SimilarityQuery{Threshold: 0.78, Limit: 3, ExcludeID: "same"})
		for _, m := range got {
			if m.CaseID == "same" {
				t.Fatalf("excluded case returned")
			}
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		got, _ := idx.Search(ctx, []float32{1, 0, 0}, entities.SimilarityQuery{Threshold: 0, Limit: 0})
		if len(got) != 0 {
			t.Fatalf("expected no matches")
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = idx.Delete(ctx, "far")
		if idx.Len() != 4 {
			t.Fatalf("expected 4 cases, got %d", idx.Len())
		}
	})
}

func TestMemoryIndex_SearchContractRandomized(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	idx := NewMemoryIndex()
	for i := 0; i < 200; i++ {
		v := []float32{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		if err := idx.Upsert(ctx, entities.IndexedCase{CaseID: fmt.Sprintf("c-%03d", i), Vector: v}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for round := 0; round < 50; round++ {
		q := entities.SimilarityQuery{
			Threshold: rng.Float64(),
			Limit:     1 + rng.Intn(5),
			ExcludeID: fmt.Sprintf("c-%03d", rng.Intn(200)),
		}
		vec := []float32{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
		got, err := idx.Search(ctx, vec, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) > q.Limit {
			t.Fatalf("round %d: %d matches over limit %d", round, len(got), q.Limit)
		}
		for i, m := range got {
			if !q.Admits(m.Similarity) || m.CaseID == q.ExcludeID {
				t.Fatalf("round %d: contract violated by %+v", round, m)
			}
			if i > 0 && got[i-1].Similarity < m.Similarity {
				t.Fatalf("round %d: not sorted", round)
			}
		}
	}
}

func TestWarm(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICaseRepository(ctrl)
	idx := NewMemoryIndex()

	repo.EXPECT().List(gomock.Any()).Return([]entities.Case{
		{ID: "a", Vector: []float32{1, 0}},
		{ID: "b"},
		{ID: "c", Vector: []float32{0, 1}},
	}, nil)

	n, err := Warm(context.Background(), repo, idx)
	if err != nil || n != 2 || idx.Len() != 2 {
		t.Fatalf("expected 2 indexed cases, got n=%d len=%d err=%v", n, idx.Len(), err)
	}

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		if _, err := Warm(context.Background(), repo, NewMemoryIndex()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
