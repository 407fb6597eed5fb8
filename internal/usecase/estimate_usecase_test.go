package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/pricing"
	mock_interfaces "letterpress_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type estimateMocks struct {
	repo    *mock_interfaces.MockIEstimateRepository
	orders  *mock_interfaces.MockIOrderRepository
	serials *mock_interfaces.MockISerialAllocator
}

func newEstimateUseCaseForTest(ctrl *gomock.Controller) (*EstimateUseCase, estimateMocks) {
	m := estimateMocks{
		repo:    mock_interfaces.NewMockIEstimateRepository(ctrl),
		orders:  mock_interfaces.NewMockIOrderRepository(ctrl),
		serials: mock_interfaces.NewMockISerialAllocator(ctrl),
	}
	uc := NewEstimateUseCase(m.repo, m.orders, m.serials, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestEstimateUseCase_Quote(t *testing.T) {
	uc := NewEstimateUseCase(nil, nil, nil, nil)

	q := uc.Quote(map[string]any{"paperAndCuttingCostPerCard": 10, "lpCostPerCard": "5"}, 100, 20)
	if q.Record.TotalCost != "3360.00" || q.Record.TotalCostPerUnit != "33.60" {
		t.Fatalf("unexpected record: %+v", q.Record)
	}
	if q.Record.WastagePercentage != "5.00" || q.Record.OverheadPercentage != "35.00" {
		t.Fatalf("unexpected policy percentages: %+v", q.Record)
	}
}

func TestEstimateUseCase_CreateEstimate(t *testing.T) {
	valid := CreateEstimateInput{
		ClientID:         "c-1",
		JobName:          " Wedding suite ",
		Quantity:         100,
		MarkupPercentage: 20,
		PerProcessCosts:  map[string]any{"paperAndCuttingCostPerCard": "10", "lpCostPerCard": 5.0},
	}

	t.Run("production cannot create", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.CreateEstimate(context.Background(), valid, entities.RoleProduction)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		cases := []struct {
			name string
			mod  func(in *CreateEstimateInput)
			want error
		}{
			{"client", func(in *CreateEstimateInput) { in.ClientID = "  " }, ErrInvalidClientID},
			{"version", func(in *CreateEstimateInput) { in.VersionID = "v2" }, ErrInvalidVersionID},
			{"zero version", func(in *CreateEstimateInput) { in.VersionID = "0" }, ErrInvalidVersionID},
			{"quantity", func(in *CreateEstimateInput) { in.Quantity = 0 }, ErrInvalidQuantity},
			{"unknown field", func(in *CreateEstimateInput) {
				in.PerProcessCosts = map[string]any{"glitterCostPerCard": 1}
			}, ErrUnknownCostField},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := valid
				tc.mod(&in)
				_, err := uc.CreateEstimate(context.Background(), in, entities.RoleAdmin)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("unknown field is a validation error", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		in := valid
		in.PerProcessCosts = map[string]any{"glitterCostPerCard": 1, "lpCostPerCard": 1}
		_, err := uc.CreateEstimate(context.Background(), in, entities.RoleStaff)

		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Details != "glitterCostPerCard" {
			t.Fatalf("expected ValidationError naming the field, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)

		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.ClientID != "c-1" || e.VersionID != "1" || e.JobName != "Wedding suite" {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Calculations.TotalCost != "3360.00" || e.Calculations.Quantity != 100 {
					t.Fatalf("unexpected calculations: %+v", e.Calculations)
				}
				if e.PerProcessCosts["lpCostPerCard"] != "5" {
					t.Fatalf("unexpected costs: %v", e.PerProcessCosts)
				}
				if !e.CreatedAt.Equal(fixedNow) || !e.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected timestamps")
				}
				if !e.IsMovable() {
					t.Fatalf("new estimates must be movable")
				}
				return e, nil
			},
		)

		res, err := uc.CreateEstimate(context.Background(), valid, entities.RoleStaff)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("negative markup stored as zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.MarkupPercentage != 0 || e.Calculations.MarkupPercentage != "0.00" {
					t.Fatalf("expected clamped markup, got %+v", e)
				}
				return e, nil
			},
		)

		in := valid
		in.MarkupPercentage = -15
		if _, err := uc.CreateEstimate(context.Background(), in, entities.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.CreateEstimate(context.Background(), valid, entities.RoleAdmin)
		var pe *PersistenceError
		if !errors.As(err, &pe) || pe.Err.Error() != "db" {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})
}

func TestEstimateUseCase_GetAndList(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.GetEstimate(context.Background(), " ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetEstimate(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("list by client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().ListByClientID(gomock.Any(), "c-1").Return([]entities.Estimate{{ID: "e-1"}, {ID: "e-2"}}, nil)

		list, err := uc.ListClientEstimates(context.Background(), " c-1 ")
		if err != nil || len(list) != 2 {
			t.Fatalf("unexpected result: %v %v", list, err)
		}
	})

	t.Run("list without client", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.ListClientEstimates(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})
}

func TestEstimateUseCase_CancelAndEscrow(t *testing.T) {
	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil)
		m.repo.EXPECT().UpdateCanceled(gomock.Any(), "e-1", true, fixedNow).Return(entities.Estimate{ID: "e-1", IsCanceled: true}, nil)

		got, err := uc.CancelEstimate(context.Background(), "e-1", entities.RoleAdmin)
		if err != nil || !got.IsCanceled {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", IsCanceled: true}, nil)

		if _, err := uc.CancelEstimate(context.Background(), "e-1", entities.RoleStaff); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("converted estimate cannot be canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", MovedToOrders: true}, nil)

		_, err := uc.CancelEstimate(context.Background(), "e-1", entities.RoleStaff)
		if !errors.Is(err, ErrEstimateLocked) {
			t.Fatalf("expected ErrEstimateLocked, got %v", err)
		}
	})

	t.Run("escrow on and off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		gomock.InOrder(
			m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil),
			m.repo.EXPECT().UpdateEscrow(gomock.Any(), "e-1", true, fixedNow).Return(entities.Estimate{ID: "e-1", InEscrow: true}, nil),
			m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", InEscrow: true}, nil),
			m.repo.EXPECT().UpdateEscrow(gomock.Any(), "e-1", false, fixedNow).Return(entities.Estimate{ID: "e-1"}, nil),
		)

		got, err := uc.SetEscrow(context.Background(), "e-1", true, entities.RoleAdmin)
		if err != nil || !got.InEscrow {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
		got, err = uc.SetEscrow(context.Background(), "e-1", false, entities.RoleAdmin)
		if err != nil || got.InEscrow {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("b2b cannot touch escrow", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil, nil, nil)
		_, err := uc.SetEscrow(context.Background(), "e-1", true, entities.RoleB2B)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})
}

func TestEstimateUseCase_ConvertToOrder(t *testing.T) {
	estimate := entities.Estimate{
		ID:        "e-1",
		ClientID:  "c-1",
		VersionID: "2",
		JobName:   "Business cards",
		Quantity:  250,
		Calculations: pricing.EnhancedEstimateRecord{
			TotalCost: "1250.00",
		},
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(estimate, nil)
		m.serials.EXPECT().NextOrderSerial(gomock.Any(), 2024).Return(int64(42), nil)
		m.orders.EXPECT().CreateFromEstimate(gomock.Any(), gomock.Any(), "e-1", fixedNow).DoAndReturn(
			func(_ context.Context, o entities.Order, _ string, _ time.Time) (entities.Order, error) {
				if o.ID == "" || o.OrderSerial != "FL-2024-00042" || o.ClientID != "c-1" || o.EstimateID != "e-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Stage != entities.StageNotStarted || o.Status != entities.OrderStatusInProgress {
					t.Fatalf("new orders start at the initial stage, got %+v", o)
				}
				if o.TotalCost != "1250.00" || o.Quantity != 250 || o.CompletedAt != nil {
					t.Fatalf("unexpected order details: %+v", o)
				}
				return o, nil
			},
		)

		o, err := uc.ConvertToOrder(context.Background(), "e-1", entities.RoleStaff)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderSerial != "FL-2024-00042" {
			t.Fatalf("unexpected serial %q", o.OrderSerial)
		}
	})

	t.Run("frozen estimates are refused", func(t *testing.T) {
		for _, e := range []entities.Estimate{
			{ID: "e-1", MovedToOrders: true},
			{ID: "e-1", IsCanceled: true},
			{ID: "e-1", InEscrow: true},
		} {
			ctrl := gomock.NewController(t)
			uc, m := newEstimateUseCaseForTest(ctrl)
			m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(e, nil)

			_, err := uc.ConvertToOrder(context.Background(), "e-1", entities.RoleAdmin)
			if !errors.Is(err, ErrEstimateLocked) {
				t.Fatalf("expected ErrEstimateLocked for %+v, got %v", e, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("serial allocation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(estimate, nil)
		m.serials.EXPECT().NextOrderSerial(gomock.Any(), 2024).Return(int64(0), errors.New("throttled"))

		_, err := uc.ConvertToOrder(context.Background(), "e-1", entities.RoleAdmin)
		var pe *PersistenceError
		if !errors.As(err, &pe) || pe.Op != "allocate order serial" {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})

	t.Run("lost race against another conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEstimateUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(estimate, nil)
		m.serials.EXPECT().NextOrderSerial(gomock.Any(), 2024).Return(int64(7), nil)
		m.orders.EXPECT().CreateFromEstimate(gomock.Any(), gomock.Any(), "e-1", gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.ConvertToOrder(context.Background(), "e-1", entities.RoleAdmin)
		if !errors.Is(err, ErrEstimateLocked) {
			t.Fatalf("expected ErrEstimateLocked, got %v", err)
		}
	})
}
