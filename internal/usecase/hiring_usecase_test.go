package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHiringUseCase_Hire_Validations(t *testing.T) {
	t.Run("empty proposal id skips remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		_, err := uc.Hire(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})
}

func TestHiringUseCase_Hire_ProposalChecks(t *testing.T) {
	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Hire(context.Background(), "p-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	for _, status := range []string{"UnderReview", "Rejected", "Rejeitada", "approved"} {
		t.Run("proposal not approved "+status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIHiringRepository(ctrl)
			gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
			uc := NewHiringUseCase(repo, gateway)

			gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{ID: "p-1", Status: status}, nil)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.Hire(context.Background(), "p-1")
			if !errors.Is(err, ErrProposalNotApproved) {
				t.Fatalf("expected ErrProposalNotApproved, got %v", err)
			}
			var notApproved *ProposalNotApprovedError
			if !errors.As(err, &notApproved) {
				t.Fatalf("expected *ProposalNotApprovedError, got %T", err)
			}
			if notApproved.Status != status || notApproved.ProposalID != "p-1" {
				t.Fatalf("unexpected diagnostics: %+v", notApproved)
			}
		})
	}

	t.Run("transport failure is not reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		cause := errors.New("connection refused")
		gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{}, cause)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Hire(context.Background(), "p-1")
		if !errors.Is(err, ErrProposalLookupFailed) || !errors.Is(err, cause) {
			t.Fatalf("expected ErrProposalLookupFailed wrapping cause, got %v", err)
		}
		if errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("transport failure must not be ErrProposalNotFound")
		}
	})
}

func TestHiringUseCase_Hire_Persistence(t *testing.T) {
	t.Run("approved proposal creates exactly one hiring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{ID: "p-1", Status: "Approved"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Hiring{})).DoAndReturn(
			func(_ context.Context, h entities.Hiring) (entities.Hiring, error) {
				if h.ID == "" || h.ProposalID != "p-1" || h.HiredAt.IsZero() {
					t.Fatalf("unexpected hiring: %+v", h)
				}
				return h, nil
			},
		).Times(1)

		res, err := uc.Hire(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProposalID != "p-1" || res.ID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("uniqueness violation surfaces as persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{ID: "p-1", Status: "Approved"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Hiring{}, interfaces.ErrHiringAlreadyExists)

		_, err := uc.Hire(context.Background(), "p-1")
		if !errors.Is(err, ErrPersistenceFailure) || !errors.Is(err, interfaces.ErrHiringAlreadyExists) {
			t.Fatalf("expected ErrPersistenceFailure wrapping ErrHiringAlreadyExists, got %v", err)
		}
		if errors.Is(err, ErrProposalNotApproved) || errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("persistence failure must not look like a business rule failure")
		}
	})

	t.Run("second hire fails once the first one is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		gateway := mock_interfaces.NewMockIProposalGateway(ctrl)
		uc := NewHiringUseCase(repo, gateway)

		stored := map[string]entities.Hiring{}
		gateway.EXPECT().GetProposalStatus(gomock.Any(), "p-1").Return(entities.ProposalStatusView{ID: "p-1", Status: "Approved"}, nil).Times(2)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h entities.Hiring) (entities.Hiring, error) {
				if _, ok := stored[h.ProposalID]; ok {
					return entities.Hiring{}, interfaces.ErrHiringAlreadyExists
				}
				stored[h.ProposalID] = h
				return h, nil
			},
		).Times(2)

		if _, err := uc.Hire(context.Background(), "p-1"); err != nil {
			t.Fatalf("first hire: unexpected error: %v", err)
		}
		if _, err := uc.Hire(context.Background(), "p-1"); !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("second hire: expected ErrPersistenceFailure, got %v", err)
		}
		if len(stored) != 1 {
			t.Fatalf("expected exactly one hiring, got %d", len(stored))
		}
	})
}

func TestHiringUseCase_Reads(t *testing.T) {
	t.Run("get invalid id", func(t *testing.T) {
		uc := NewHiringUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidHiringID) {
			t.Fatalf("expected ErrInvalidHiringID, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		uc := NewHiringUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.Hiring{}, nil)

		_, err := uc.GetByID(context.Background(), "h-1")
		if !errors.Is(err, ErrHiringNotFound) {
			t.Fatalf("expected ErrHiringNotFound, got %v", err)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		uc := NewHiringUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "h-1").Return(entities.Hiring{ID: "h-1", ProposalID: "p-1", HiredAt: time.Now()}, nil)

		res, err := uc.GetByID(context.Background(), "h-1")
		if err != nil || res.ProposalID != "p-1" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		uc := NewHiringUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		res, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res == nil || len(res) != 0 {
			t.Fatalf("expected empty slice, got %#v", res)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHiringRepository(ctrl)
		uc := NewHiringUseCase(repo, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.List(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
