package interfaces

import (
	"context"
	"damage_triage/internal/domain/entities"
)

// ICaseEventPublisher announces case lifecycle changes to other services.
// Publishing is best effort: callers log failures and carry on.
type ICaseEventPublisher interface {
	CaseCreated(ctx context.Context, c entities.Case) error
	CaseStatusChanged(ctx context.Context, caseID string, status entities.CaseStatus) error
}
