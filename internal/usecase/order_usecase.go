package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrStaffNotFound          = errors.New("staff not found")
	ErrStaffNotAssignable     = errors.New("staff member cannot run production")
	ErrInvalidDeadline        = errors.New("invalid deadline")
	ErrEmptyArtwork           = errors.New("artwork file is empty")
	ErrArtworkTooLarge        = errors.New("artwork exceeds maximum size")
	ErrUnsupportedArtworkType = errors.New("unsupported artwork type")
	ErrArtworkUnavailable     = errors.New("artwork storage is not configured")
)

// MaxArtworkSize is the largest artwork file accepted for an order.
const MaxArtworkSize = 10 * 1024 * 1024

const defaultArtworkURLTTL = time.Hour

var artworkContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".pdf":  "application/pdf",
}

// TransitionRequest is a pending stage change. Building one never touches
// the order; only ConfirmTransition persists it.
type TransitionRequest struct {
	ID          string
	OrderID     string
	From        entities.Stage
	To          entities.Stage
	Role        entities.Role
	RequestedAt time.Time
}

// OrderListOptions controls ListOrders ordering.
type OrderListOptions struct {
	SortBySerial bool
	Descending   bool
}

// StageCount is the number of orders sitting in a stage.
type StageCount struct {
	Stage entities.Stage `json:"stage"`
	Count int            `json:"count"`
}

// OrderDashboard is the read model behind the orders overview screen.
type OrderDashboard struct {
	KPIs   entities.OrderKPIs
	Stages []StageCount
}

// ArtworkLink is a time-limited download link for a stored artwork file.
type ArtworkLink struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// IOrderUseCase exposes the production workflow.
//
//   - stage picker => RequestTransition / RequestIndicatorClick, then ConfirmTransition
//   - orders overview => ListOrders / Dashboard
//   - production planning => AssignProduction
//   - proofs => UploadArtwork / ListArtwork

type IOrderUseCase interface {
	RequestTransition(order entities.Order, target entities.Stage, role entities.Role) (TransitionRequest, error)
	RequestIndicatorClick(order entities.Order, clicked entities.Stage, role entities.Role) (TransitionRequest, error)
	ConfirmTransition(ctx context.Context, req TransitionRequest) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, opts OrderListOptions) ([]entities.Order, error)
	Dashboard(ctx context.Context) (OrderDashboard, error)
	AssignProduction(ctx context.Context, orderID, staffID string, deadline time.Time, role entities.Role) (entities.Order, error)
	UploadArtwork(ctx context.Context, orderID, filename string, size int64, body io.Reader, role entities.Role) (ArtworkLink, error)
	ListArtwork(ctx context.Context, orderID string) ([]ArtworkLink, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	staff   interfaces.IStaffRepository
	artwork interfaces.IArtworkStorage

	now    func() time.Time
	urlTTL time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, staff interfaces.IStaffRepository, artwork interfaces.IArtworkStorage) *OrderUseCase {
	return &OrderUseCase{
		repo:     repo,
		staff:    staff,
		artwork:  artwork,
		now:      time.Now,
		urlTTL:   defaultArtworkURLTTL,
		inFlight: make(map[string]struct{}),
	}
}

func (u *OrderUseCase) RequestTransition(order entities.Order, target entities.Stage, role entities.Role) (TransitionRequest, error) {
	if !role.CanTransitionStages() {
		return TransitionRequest{}, ErrForbiddenRole
	}
	if strings.TrimSpace(order.ID) == "" {
		return TransitionRequest{}, ErrInvalidOrderID
	}
	if !target.Valid() {
		return TransitionRequest{}, ErrInvalidStage
	}

	return TransitionRequest{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		From:        order.Stage,
		To:          target,
		Role:        role,
		RequestedAt: u.now().UTC(),
	}, nil
}

func (u *OrderUseCase) RequestIndicatorClick(order entities.Order, clicked entities.Stage, role entities.Role) (TransitionRequest, error) {
	if !role.CanTransitionStages() {
		return TransitionRequest{}, ErrForbiddenRole
	}
	if !clicked.Valid() {
		return TransitionRequest{}, ErrInvalidStage
	}
	target, ok := entities.TargetForIndicatorClick(order.Stage, clicked)
	if !ok {
		return TransitionRequest{}, ErrNoTransitionTarget
	}
	return u.RequestTransition(order, target, role)
}

func (u *OrderUseCase) ConfirmTransition(ctx context.Context, req TransitionRequest) (entities.Order, error) {
	if !req.Role.CanTransitionStages() {
		return entities.Order{}, ErrForbiddenRole
	}
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !req.To.Valid() {
		return entities.Order{}, ErrInvalidStage
	}

	if !u.acquire(orderID) {
		return entities.Order{}, ErrTransitionInFlight
	}
	defer u.release(orderID)

	// The write completes even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	now := u.now().UTC()
	update := interfaces.StageUpdate{
		Stage:       req.To,
		Status:      entities.StatusForStage(req.To),
		LastUpdated: now,
	}
	if req.To.IsTerminal() {
		completedAt := now
		update.CompletedAt = &completedAt
	}

	updated, err := u.repo.UpdateStage(ctx, orderID, update)
	if err != nil {
		log.Printf("[order][usecase] stage update failed order_id=%s from=%q to=%q err=%v", orderID, req.From, req.To, err)
		return entities.Order{}, &PersistenceError{Op: "update order stage", ID: orderID, Err: err}
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	log.Printf("[order][usecase] stage confirmed order_id=%s from=%q to=%q role=%s request_id=%s", orderID, req.From, req.To, req.Role, req.ID)
	return updated, nil
}

// acquire marks an order as having a confirmation in flight. It is false when
// one already is.
func (u *OrderUseCase) acquire(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[orderID]; busy {
		return false
	}
	u.inFlight[orderID] = struct{}{}
	return true
}

func (u *OrderUseCase) release(orderID string) {
	u.mu.Lock()
	delete(u.inFlight, orderID)
	u.mu.Unlock()
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, &PersistenceError{Op: "get order", ID: id, Err: err}
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, opts OrderListOptions) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list orders", Err: err}
	}
	if opts.SortBySerial {
		return entities.SortOrdersBySerial(orders, opts.Descending), nil
	}
	return orders, nil
}

func (u *OrderUseCase) Dashboard(ctx context.Context) (OrderDashboard, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return OrderDashboard{}, &PersistenceError{Op: "list orders", Err: err}
	}

	counts := make(map[entities.Stage]int, len(entities.Stages))
	for _, o := range orders {
		counts[o.Stage]++
	}
	stages := make([]StageCount, 0, len(entities.Stages))
	for _, s := range entities.Stages {
		stages = append(stages, StageCount{Stage: s, Count: counts[s]})
	}

	return OrderDashboard{
		KPIs:   entities.ComputeOrderKPIs(orders),
		Stages: stages,
	}, nil
}

func (u *OrderUseCase) AssignProduction(ctx context.Context, orderID, staffID string, deadline time.Time, role entities.Role) (entities.Order, error) {
	if !role.CanAssignProduction() {
		return entities.Order{}, ErrForbiddenRole
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	staffID = strings.TrimSpace(staffID)
	if staffID == "" {
		return entities.Order{}, ErrStaffNotFound
	}
	if deadline.IsZero() {
		return entities.Order{}, ErrInvalidDeadline
	}

	member, err := u.staff.GetByID(ctx, staffID)
	if err != nil {
		return entities.Order{}, &PersistenceError{Op: "get staff", ID: staffID, Err: err}
	}
	if member.ID == "" {
		return entities.Order{}, ErrStaffNotFound
	}
	if !member.Active || !member.Role.CanRunProduction() {
		return entities.Order{}, ErrStaffNotAssignable
	}

	now := u.now().UTC()
	assignment := entities.ProductionAssignment{
		Assigned:     member.ID,
		DeadlineDate: deadline.UTC(),
		AssignedAt:   now,
	}
	updated, err := u.repo.UpdateProductionAssignment(ctx, orderID, assignment, now)
	if err != nil {
		return entities.Order{}, &PersistenceError{Op: "assign production", ID: orderID, Err: err}
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	log.Printf("[order][usecase] production assigned order_id=%s staff_id=%s deadline=%s", orderID, member.ID, assignment.DeadlineDate.Format(time.RFC3339))
	return updated, nil
}

func (u *OrderUseCase) UploadArtwork(ctx context.Context, orderID, filename string, size int64, body io.Reader, role entities.Role) (ArtworkLink, error) {
	if !role.CanTransitionStages() {
		return ArtworkLink{}, ErrForbiddenRole
	}
	if size <= 0 {
		return ArtworkLink{}, ErrEmptyArtwork
	}
	if size > MaxArtworkSize {
		return ArtworkLink{}, ErrArtworkTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := artworkContentTypes[ext]
	if !ok {
		return ArtworkLink{}, ErrUnsupportedArtworkType
	}
	if u.artwork == nil {
		return ArtworkLink{}, ErrArtworkUnavailable
	}

	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return ArtworkLink{}, err
	}

	key := fmt.Sprintf("orders/%s/artwork/%s%s", order.ID, uuid.NewString(), ext)
	if err := u.artwork.Upload(ctx, key, body, size, contentType); err != nil {
		return ArtworkLink{}, &PersistenceError{Op: "upload artwork", ID: order.ID, Err: err}
	}

	updated, err := u.repo.AddArtworkKey(ctx, order.ID, key, u.now().UTC())
	if err != nil {
		return ArtworkLink{}, &PersistenceError{Op: "record artwork", ID: order.ID, Err: err}
	}
	if updated.ID == "" {
		return ArtworkLink{}, ErrOrderNotFound
	}

	log.Printf("[order][usecase] artwork uploaded order_id=%s key=%s size=%d", order.ID, key, size)
	return u.link(ctx, key)
}

func (u *OrderUseCase) ListArtwork(ctx context.Context, orderID string) ([]ArtworkLink, error) {
	order, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	links := make([]ArtworkLink, 0, len(order.ArtworkKeys))
	for _, key := range order.ArtworkKeys {
		l, err := u.link(ctx, key)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, nil
}

func (u *OrderUseCase) link(ctx context.Context, key string) (ArtworkLink, error) {
	if u.artwork == nil {
		return ArtworkLink{}, ErrArtworkUnavailable
	}
	expiresAt := u.now().UTC().Add(u.urlTTL)
	url, err := u.artwork.PresignedURL(ctx, key, u.urlTTL)
	if err != nil {
		return ArtworkLink{}, &PersistenceError{Op: "presign artwork", ID: key, Err: err}
	}
	return ArtworkLink{Key: key, URL: url, ExpiresAt: expiresAt}, nil
}
