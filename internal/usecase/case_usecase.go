package usecase

import (
	"context"
	"damage_triage/internal/domain/entities"
	"damage_triage/internal/usecase/interfaces"
	"errors"
	"log"
	"strings"
)

var (
	ErrCaseNotFound            = errors.New("case not found")
	ErrInvalidCaseID           = errors.New("invalid case id")
	ErrInvalidCaseStatus       = errors.New("case_status must be approved or declined")
	ErrInvalidStatusTransition = errors.New("case status transition not allowed")
)

// ICaseUseCase exposes the reviewer side of the triage service.
//
//   - GET /cases        => List()
//   - GET /cases/{id}   => GetByID()
//   - PATCH /cases/{id} => UpdateStatus()
type ICaseUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error)
}

type CaseUseCase struct {
	repo   interfaces.ICaseRepository
	events interfaces.ICaseEventPublisher
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

// NewCaseUseCase builds the reviewer usecase. events may be nil.
func NewCaseUseCase(repo interfaces.ICaseRepository, events interfaces.ICaseEventPublisher) *CaseUseCase {
	return &CaseUseCase{repo: repo, events: events}
}

func (u *CaseUseCase) GetByID(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

func (u *CaseUseCase) List(ctx context.Context) ([]entities.Case, error) {
	cases, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []entities.Case{}
	}
	return cases, nil
}

// UpdateStatus records a reviewer decision. Re-applying the current status
// returns the case unchanged; leaving a terminal status is rejected.
func (u *CaseUseCase) UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}
	status = entities.CaseStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.IsTerminal() {
		return entities.Case{}, ErrInvalidCaseStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if current.CaseStatus == status {
		log.Printf("[case][usecase] status unchanged case_id=%s status=%s", id, status)
		return current, nil
	}
	if !current.CaseStatus.CanTransitionTo(status) {
		log.Printf("[case][usecase] transition rejected case_id=%s from=%s to=%s", id, current.CaseStatus, status)
		return entities.Case{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, current.CaseStatus, status)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		// The guarded write lost a race; decide from what is stored now.
		latest, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Case{}, err
		}
		if latest.CaseStatus == status {
			return latest, nil
		}
		return entities.Case{}, ErrInvalidStatusTransition
	}

	log.Printf("[case][usecase] status updated case_id=%s from=%s to=%s", id, current.CaseStatus, status)
	if u.events != nil {
		if err := u.events.CaseStatusChanged(ctx, id, status); err != nil {
			log.Printf("[case][usecase] publish status event failed case_id=%s err=%v", id, err)
		}
	}
	return updated, nil
}
