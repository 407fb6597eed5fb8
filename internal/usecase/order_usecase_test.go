package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"
	mock_interfaces "letterpress_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newOrderUseCaseForTest(ctrl *gomock.Controller) (*OrderUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIStaffRepository, *mock_interfaces.MockIArtworkStorage) {
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	staff := mock_interfaces.NewMockIStaffRepository(ctrl)
	artwork := mock_interfaces.NewMockIArtworkStorage(ctrl)
	uc := NewOrderUseCase(repo, staff, artwork)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, staff, artwork
}

func TestOrderUseCase_RequestTransition(t *testing.T) {
	order := entities.Order{ID: "o-1", Stage: entities.StageDesign}

	t.Run("b2b is view only", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.RequestTransition(order, entities.StagePositives, entities.RoleB2B)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.RequestTransition(order, entities.StagePositives, entities.Role("guest"))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("invalid target", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.RequestTransition(order, entities.Stage("Binding"), entities.RoleAdmin)
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("builds request without mutating the order", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		uc.now = func() time.Time { return fixedNow }

		for _, role := range []entities.Role{entities.RoleAdmin, entities.RoleStaff, entities.RoleProduction} {
			req, err := uc.RequestTransition(order, entities.StageCompleted, role)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", role, err)
			}
			if req.ID == "" || req.OrderID != "o-1" || req.From != entities.StageDesign || req.To != entities.StageCompleted || req.Role != role {
				t.Fatalf("unexpected request: %+v", req)
			}
			if !req.RequestedAt.Equal(fixedNow) {
				t.Fatalf("unexpected requested_at: %v", req.RequestedAt)
			}
		}
		if order.Stage != entities.StageDesign {
			t.Fatalf("order mutated: %+v", order)
		}
	})
}

func TestOrderUseCase_RequestIndicatorClick(t *testing.T) {
	uc := NewOrderUseCase(nil, nil, nil)

	t.Run("clicking current stage steps back", func(t *testing.T) {
		order := entities.Order{ID: "o-1", Stage: entities.StagePrinting}
		req, err := uc.RequestIndicatorClick(order, entities.StagePrinting, entities.RoleProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.To != entities.StagePositives {
			t.Fatalf("expected Positives, got %q", req.To)
		}
	})

	t.Run("clicking a future stage jumps to it", func(t *testing.T) {
		order := entities.Order{ID: "o-1", Stage: entities.StageDesign}
		req, err := uc.RequestIndicatorClick(order, entities.StageCompleted, entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.To != entities.StageCompleted {
			t.Fatalf("expected Completed, got %q", req.To)
		}
	})

	t.Run("clicking initial stage while on it", func(t *testing.T) {
		order := entities.Order{ID: "o-1", Stage: entities.StageNotStarted}
		_, err := uc.RequestIndicatorClick(order, entities.StageNotStarted, entities.RoleAdmin)
		if !errors.Is(err, ErrNoTransitionTarget) {
			t.Fatalf("expected ErrNoTransitionTarget, got %v", err)
		}
	})

	t.Run("b2b click", func(t *testing.T) {
		order := entities.Order{ID: "o-1", Stage: entities.StagePrinting}
		_, err := uc.RequestIndicatorClick(order, entities.StageDelivery, entities.RoleB2B)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})
}

func TestOrderUseCase_ConfirmTransition(t *testing.T) {
	t.Run("non terminal stage leaves completed_at unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.StageUpdate) (entities.Order, error) {
				if u.Stage != entities.StageQualityCheck || u.Status != entities.OrderStatusInProgress {
					t.Fatalf("unexpected update: %+v", u)
				}
				if !u.LastUpdated.Equal(fixedNow) {
					t.Fatalf("unexpected last_updated: %v", u.LastUpdated)
				}
				if u.CompletedAt != nil {
					t.Fatalf("completed_at must not be written for %q", u.Stage)
				}
				return entities.Order{ID: id, Stage: u.Stage, Status: u.Status, LastUpdated: u.LastUpdated}, nil
			},
		)

		req := TransitionRequest{ID: "r-1", OrderID: "o-1", From: entities.StagePrinting, To: entities.StageQualityCheck, Role: entities.RoleStaff}
		got, err := uc.ConfirmTransition(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stage != entities.StageQualityCheck || got.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("terminal stage stamps completed_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.StageUpdate) (entities.Order, error) {
				if u.Status != entities.OrderStatusCompleted {
					t.Fatalf("expected Completed status, got %q", u.Status)
				}
				if u.CompletedAt == nil || !u.CompletedAt.Equal(fixedNow) {
					t.Fatalf("expected completed_at stamp, got %v", u.CompletedAt)
				}
				return entities.Order{ID: id, Stage: u.Stage, Status: u.Status, CompletedAt: u.CompletedAt}, nil
			},
		)

		req := TransitionRequest{OrderID: "o-1", From: entities.StageDelivery, To: entities.StageCompleted, Role: entities.RoleAdmin}
		got, err := uc.ConfirmTransition(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CompletedAt == nil {
			t.Fatalf("expected completed order, got %+v", got)
		}
	})

	t.Run("cancelled request context does not abort the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string, u interfaces.StageUpdate) (entities.Order, error) {
				if err := ctx.Err(); err != nil {
					return entities.Order{}, err
				}
				return entities.Order{ID: id, Stage: u.Stage, Status: u.Status}, nil
			},
		)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req := TransitionRequest{ID: "r-1", OrderID: "o-1", From: entities.StagePrinting, To: entities.StageQualityCheck, Role: entities.RoleStaff}
		got, err := uc.ConfirmTransition(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Stage != entities.StageQualityCheck {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

		order := entities.Order{ID: "o-1", Stage: entities.StagePrinting}
		req, err := uc.RequestTransition(order, entities.StageDelivery, entities.RoleProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err = uc.ConfirmTransition(context.Background(), req)

		var pe *PersistenceError
		if !errors.As(err, &pe) || pe.ID != "o-1" || pe.Err.Error() != "throttled" {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
		if order.Stage != entities.StagePrinting {
			t.Fatalf("order must be left unchanged, got %+v", order)
		}
	})

	t.Run("retry after failure is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		gomock.InOrder(
			repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{}, errors.New("timeout")),
			repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).Return(entities.Order{ID: "o-1", Stage: entities.StageDesign}, nil),
		)

		req := TransitionRequest{OrderID: "o-1", To: entities.StageDesign, Role: entities.RoleStaff}
		if _, err := uc.ConfirmTransition(context.Background(), req); err == nil {
			t.Fatalf("expected first attempt to fail")
		}
		if _, err := uc.ConfirmTransition(context.Background(), req); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().UpdateStage(gomock.Any(), "missing", gomock.Any()).Return(entities.Order{}, nil)

		req := TransitionRequest{OrderID: "missing", To: entities.StageDesign, Role: entities.RoleAdmin}
		_, err := uc.ConfirmTransition(context.Background(), req)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("forbidden role never reaches the repo", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		req := TransitionRequest{OrderID: "o-1", To: entities.StageDesign, Role: entities.RoleB2B}
		_, err := uc.ConfirmTransition(context.Background(), req)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("second confirmation while one is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)

		entered := make(chan struct{})
		unblock := make(chan struct{})
		repo.EXPECT().UpdateStage(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, u interfaces.StageUpdate) (entities.Order, error) {
				close(entered)
				<-unblock
				return entities.Order{ID: id, Stage: u.Stage}, nil
			},
		)
		repo.EXPECT().UpdateStage(gomock.Any(), "o-2", gomock.Any()).Return(entities.Order{ID: "o-2", Stage: entities.StageDesign}, nil)

		req := TransitionRequest{OrderID: "o-1", To: entities.StagePositives, Role: entities.RoleProduction}
		done := make(chan error, 1)
		go func() {
			_, err := uc.ConfirmTransition(context.Background(), req)
			done <- err
		}()
		<-entered

		if _, err := uc.ConfirmTransition(context.Background(), req); !errors.Is(err, ErrTransitionInFlight) {
			t.Fatalf("expected ErrTransitionInFlight, got %v", err)
		}

		other := TransitionRequest{OrderID: "o-2", To: entities.StageDesign, Role: entities.RoleProduction}
		if _, err := uc.ConfirmTransition(context.Background(), other); err != nil {
			t.Fatalf("other orders must not be blocked, got %v", err)
		}

		close(unblock)
		if err := <-done; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_ListOrdersAndDashboard(t *testing.T) {
	orders := []entities.Order{
		{ID: "a", OrderSerial: "FL-2024-00003", Stage: entities.StagePrinting},
		{ID: "b", Stage: entities.StageNotStarted},
		{ID: "c", OrderSerial: "FL-2024-00001", Stage: entities.StageCompleted},
	}

	t.Run("sorted by serial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		got, err := uc.ListOrders(context.Background(), OrderListOptions{SortBySerial: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListOrders(context.Background(), OrderListOptions{})
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrderUseCaseForTest(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(orders, nil)

		d, err := uc.Dashboard(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.KPIs.Total != 3 || d.KPIs.Active != 2 || d.KPIs.Completed != 1 || d.KPIs.Serialized != 2 || d.KPIs.NonSerialized != 1 {
			t.Fatalf("unexpected kpis: %+v", d.KPIs)
		}
		if len(d.Stages) != len(entities.Stages) {
			t.Fatalf("expected a count per stage, got %d", len(d.Stages))
		}
		if d.Stages[3].Stage != entities.StagePrinting || d.Stages[3].Count != 1 {
			t.Fatalf("unexpected printing count: %+v", d.Stages[3])
		}
	})
}

func TestOrderUseCase_AssignProduction(t *testing.T) {
	deadline := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("only admin and staff assign", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.AssignProduction(context.Background(), "o-1", "s-1", deadline, entities.RoleProduction)
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("missing deadline", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.AssignProduction(context.Background(), "o-1", "s-1", time.Time{}, entities.RoleAdmin)
		if !errors.Is(err, ErrInvalidDeadline) {
			t.Fatalf("expected ErrInvalidDeadline, got %v", err)
		}
	})

	t.Run("unknown staff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, staff, _ := newOrderUseCaseForTest(ctrl)
		staff.EXPECT().GetByID(gomock.Any(), "s-9").Return(entities.Staff{}, nil)

		_, err := uc.AssignProduction(context.Background(), "o-1", "s-9", deadline, entities.RoleAdmin)
		if !errors.Is(err, ErrStaffNotFound) {
			t.Fatalf("expected ErrStaffNotFound, got %v", err)
		}
	})

	t.Run("inactive or b2b staff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, staff, _ := newOrderUseCaseForTest(ctrl)
		staff.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Staff{ID: "s-1", Role: entities.RoleProduction, Active: false}, nil)
		staff.EXPECT().GetByID(gomock.Any(), "s-2").Return(entities.Staff{ID: "s-2", Role: entities.RoleB2B, Active: true}, nil)

		for _, id := range []string{"s-1", "s-2"} {
			_, err := uc.AssignProduction(context.Background(), "o-1", id, deadline, entities.RoleStaff)
			if !errors.Is(err, ErrStaffNotAssignable) {
				t.Fatalf("expected ErrStaffNotAssignable for %s, got %v", id, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, staff, _ := newOrderUseCaseForTest(ctrl)
		staff.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Staff{ID: "s-1", Role: entities.RoleProduction, Active: true}, nil)
		repo.EXPECT().UpdateProductionAssignment(gomock.Any(), "o-1", gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, id string, a entities.ProductionAssignment, _ time.Time) (entities.Order, error) {
				if a.Assigned != "s-1" || !a.DeadlineDate.Equal(deadline) || !a.AssignedAt.Equal(fixedNow) {
					t.Fatalf("unexpected assignment: %+v", a)
				}
				return entities.Order{ID: id, ProductionAssignments: &a}, nil
			},
		)

		got, err := uc.AssignProduction(context.Background(), " o-1 ", "s-1", deadline, entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProductionAssignments == nil || got.ProductionAssignments.Assigned != "s-1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, staff, _ := newOrderUseCaseForTest(ctrl)
		staff.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Staff{ID: "s-1", Role: entities.RoleAdmin, Active: true}, nil)
		repo.EXPECT().UpdateProductionAssignment(gomock.Any(), "o-1", gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.AssignProduction(context.Background(), "o-1", "s-1", deadline, entities.RoleAdmin)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_Artwork(t *testing.T) {
	t.Run("rejects invalid files before touching storage", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		cases := []struct {
			name     string
			filename string
			size     int64
			want     error
		}{
			{"empty", "proof.png", 0, ErrEmptyArtwork},
			{"too large", "proof.png", MaxArtworkSize + 1, ErrArtworkTooLarge},
			{"wrong type", "proof.gif", 10, ErrUnsupportedArtworkType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.UploadArtwork(context.Background(), "o-1", tc.filename, tc.size, strings.NewReader("x"), entities.RoleStaff)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UploadArtwork(context.Background(), "o-1", "proof.jpg", 10, strings.NewReader("x"), entities.RoleStaff)
		if !errors.Is(err, ErrArtworkUnavailable) {
			t.Fatalf("expected ErrArtworkUnavailable, got %v", err)
		}
	})

	t.Run("upload success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, storage := newOrderUseCaseForTest(ctrl)

		var storedKey string
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), int64(4), "application/pdf").DoAndReturn(
			func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				storedKey = key
				return nil
			},
		)
		repo.EXPECT().AddArtworkKey(gomock.Any(), "o-1", gomock.Any(), fixedNow).Return(entities.Order{ID: "o-1"}, nil)
		storage.EXPECT().PresignedURL(gomock.Any(), gomock.Any(), time.Hour).Return("https://signed.example/x", nil)

		link, err := uc.UploadArtwork(context.Background(), "o-1", "Proof.PDF", 4, strings.NewReader("%PDF"), entities.RoleProduction)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(storedKey, "orders/o-1/artwork/") || !strings.HasSuffix(storedKey, ".pdf") {
			t.Fatalf("unexpected key: %s", storedKey)
		}
		if link.Key != storedKey || link.URL != "https://signed.example/x" || !link.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
			t.Fatalf("unexpected link: %+v", link)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, storage := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

		_, err := uc.UploadArtwork(context.Background(), "o-1", "proof.png", 4, strings.NewReader("data"), entities.RoleAdmin)
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})

	t.Run("list artwork", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, storage := newOrderUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", ArtworkKeys: []string{"k1", "k2"}}, nil)
		storage.EXPECT().PresignedURL(gomock.Any(), "k1", time.Hour).Return("u1", nil)
		storage.EXPECT().PresignedURL(gomock.Any(), "k2", time.Hour).Return("u2", nil)

		links, err := uc.ListArtwork(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 2 || links[0].URL != "u1" || links[1].URL != "u2" {
			t.Fatalf("unexpected links: %+v", links)
		}
	})
}
