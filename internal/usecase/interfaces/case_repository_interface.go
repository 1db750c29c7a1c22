package interfaces

import (
	"context"
	"damage_triage/internal/domain/entities"
)

// ICaseRepository abstracts persistence for damage cases.
//
// The triage service must be able to:
//   - insert a processed case (row, images and similarity edges as one unit)
//   - read a single case or all cases, newest first
//   - move a case to a reviewer decision, guarded by its current status
//
// Missing cases are reported as a zero Case with a nil error.

type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateStatus(ctx context.Context, id string, expected, status entities.CaseStatus) (entities.Case, error)
}
