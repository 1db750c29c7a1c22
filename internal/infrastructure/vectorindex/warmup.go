package vectorindex

import (
	"context"
	"log"

	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
)

// Warm loads every stored case that carries a vector into idx.
// It returns how many cases were indexed.
func Warm(ctx context.Context, repo interfaces.ICaseRepository, idx interfaces.ICaseIndex) (int, error) {
	cases, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range cases {
		if len(c.Vector) == 0 {
			continue
		}
		if err := idx.Upsert(ctx, entities.NewIndexedCase(c)); err != nil {
			log.Printf("[index][warmup] skip case_id=%s err=%v", c.ID, err)
			continue
		}
		n++
	}
	log.Printf("[index][warmup] indexed=%d stored=%d", n, len(cases))
	return n, nil
}
