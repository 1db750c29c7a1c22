package usecase

import (
	"context"
	"errors"
	"testing"

	"damage_triage/internal/domain/entities"
	mock_interfaces "damage_triage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCaseUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{}, nil)

		_, err := uc.GetByID(context.Background(), " c-1 ")
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "c-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1"}, nil)

		c, err := uc.GetByID(context.Background(), "c-1")
		if err != nil || c.ID != "c-1" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})
}

func TestCaseUseCase_List(t *testing.T) {
	t.Run("nil becomes empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		cases, err := uc.List(context.Background())
		if err != nil || cases == nil || len(cases) != 0 {
			t.Fatalf("expected empty non-nil list, got %v, %v", cases, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.List(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCaseUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewCaseUseCase(nil, nil)
		for _, s := range []entities.CaseStatus{"", "pending", "created", "archived"} {
			_, err := uc.UpdateStatus(context.Background(), "c-1", s)
			if !errors.Is(err, ErrInvalidCaseStatus) {
				t.Fatalf("status %q: expected ErrInvalidCaseStatus, got %v", s, err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "c-1", entities.CaseStatusApproved)
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusApproved}, nil).Times(2)

		for i := 0; i < 2; i++ {
			c, err := uc.UpdateStatus(context.Background(), "c-1", "Approved")
			if err != nil || c.CaseStatus != entities.CaseStatusApproved {
				t.Fatalf("expected idempotent approve, got %+v, %v", c, err)
			}
		}
	})

	t.Run("terminal status never reverts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusDeclined}, nil)

		_, err := uc.UpdateStatus(context.Background(), "c-1", entities.CaseStatusApproved)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("success publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		events := mock_interfaces.NewMockICaseEventPublisher(ctrl)
		uc := NewCaseUseCase(repo, events)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusCreated}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.CaseStatusCreated, entities.CaseStatusDeclined).
			Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusDeclined}, nil)
		events.EXPECT().CaseStatusChanged(gomock.Any(), "c-1", entities.CaseStatusDeclined).Return(nil)

		c, err := uc.UpdateStatus(context.Background(), "c-1", entities.CaseStatusDeclined)
		if err != nil || c.CaseStatus != entities.CaseStatusDeclined {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})

	t.Run("lost race to the same decision is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusPending}, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.CaseStatusPending, entities.CaseStatusApproved).Return(entities.Case{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusApproved}, nil),
		)

		c, err := uc.UpdateStatus(context.Background(), "c-1", entities.CaseStatusApproved)
		if err != nil || c.CaseStatus != entities.CaseStatusApproved {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})

	t.Run("lost race to the other decision conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo, nil)
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusCreated}, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "c-1", entities.CaseStatusCreated, entities.CaseStatusApproved).Return(entities.Case{}, nil),
			repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Case{ID: "c-1", CaseStatus: entities.CaseStatusDeclined}, nil),
		)

		_, err := uc.UpdateStatus(context.Background(), "c-1", entities.CaseStatusApproved)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}
