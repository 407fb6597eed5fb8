package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/pricing"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidVersionID  = errors.New("invalid version id")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrUnknownCostField  = errors.New("unknown process cost field")
	ErrEstimateLocked    = errors.New("estimate was moved to orders, canceled or is in escrow")
)

const defaultVersionID = "1"

// CreateEstimateInput is what the estimating screen submits.
type CreateEstimateInput struct {
	ClientID         string
	VersionID        string
	JobName          string
	Quantity         int
	MarkupPercentage float64
	PerProcessCosts  map[string]any
}

// Quote is a priced breakdown that has not been saved.
type Quote struct {
	Breakdown pricing.CostBreakdown
	Record    pricing.EnhancedEstimateRecord
}

// IEstimateUseCase exposes the estimate lifecycle.
//
//   - estimating screen => Quote / CreateEstimate
//   - client page => ListClientEstimates
//   - estimate actions => CancelEstimate / SetEscrow / ConvertToOrder

type IEstimateUseCase interface {
	Quote(perProcessCosts map[string]any, quantity int, markupPercentage float64) Quote
	CreateEstimate(ctx context.Context, in CreateEstimateInput, role entities.Role) (entities.Estimate, error)
	GetEstimate(ctx context.Context, id string) (entities.Estimate, error)
	ListClientEstimates(ctx context.Context, clientID string) ([]entities.Estimate, error)
	CancelEstimate(ctx context.Context, id string, role entities.Role) (entities.Estimate, error)
	SetEscrow(ctx context.Context, id string, inEscrow bool, role entities.Role) (entities.Estimate, error)
	ConvertToOrder(ctx context.Context, id string, role entities.Role) (entities.Order, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	orders  interfaces.IOrderRepository
	serials interfaces.ISerialAllocator
	engine  *pricing.Engine
	now     func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, orders interfaces.IOrderRepository, serials interfaces.ISerialAllocator, engine *pricing.Engine) *EstimateUseCase {
	if engine == nil {
		engine = pricing.NewEngine(pricing.DefaultPolicy())
	}
	return &EstimateUseCase{
		repo:    repo,
		orders:  orders,
		serials: serials,
		engine:  engine,
		now:     time.Now,
	}
}

func (u *EstimateUseCase) Quote(perProcessCosts map[string]any, quantity int, markupPercentage float64) Quote {
	b := u.engine.ComputeTotalCost(perProcessCosts, quantity, markupPercentage)
	return Quote{
		Breakdown: b,
		Record:    u.engine.BuildEnhancedEstimateRecord(b, markupPercentage, quantity),
	}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput, role entities.Role) (entities.Estimate, error) {
	if !role.CanManageEstimates() {
		return entities.Estimate{}, ErrForbiddenRole
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Estimate{}, ErrInvalidClientID
	}
	versionID := strings.TrimSpace(in.VersionID)
	if versionID == "" {
		versionID = defaultVersionID
	}
	if n, err := strconv.Atoi(versionID); err != nil || n <= 0 {
		return entities.Estimate{}, &ValidationError{Err: ErrInvalidVersionID, Details: versionID}
	}
	if in.Quantity <= 0 {
		return entities.Estimate{}, ErrInvalidQuantity
	}

	costs, unknown := pricing.NormalizeCosts(in.PerProcessCosts)
	if len(unknown) > 0 {
		return entities.Estimate{}, &ValidationError{Err: ErrUnknownCostField, Details: strings.Join(unknown, ", ")}
	}

	markup := in.MarkupPercentage
	if markup < 0 {
		markup = 0
	}
	q := u.Quote(pricing.CostsFromStrings(costs), in.Quantity, markup)

	now := u.now().UTC()
	e := entities.Estimate{
		ID:               uuid.NewString(),
		ClientID:         clientID,
		VersionID:        versionID,
		JobName:          strings.TrimSpace(in.JobName),
		Quantity:         in.Quantity,
		MarkupPercentage: markup,
		PerProcessCosts:  costs,
		Calculations:     q.Record,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimate{}, &PersistenceError{Op: "create estimate", ID: e.ID, Err: err}
	}

	log.Printf("[estimate][usecase] created estimate_id=%s client_id=%s version=%s total=%s", e.ID, clientID, versionID, q.Record.TotalCost)
	return created, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, &PersistenceError{Op: "get estimate", ID: id, Err: err}
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ListClientEstimates(ctx context.Context, clientID string) ([]entities.Estimate, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	list, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, &PersistenceError{Op: "list client estimates", ID: clientID, Err: err}
	}
	return list, nil
}

func (u *EstimateUseCase) CancelEstimate(ctx context.Context, id string, role entities.Role) (entities.Estimate, error) {
	if !role.CanManageEstimates() {
		return entities.Estimate{}, ErrForbiddenRole
	}
	e, err := u.GetEstimate(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.IsCanceled {
		return e, nil
	}
	if e.MovedToOrders {
		return entities.Estimate{}, ErrEstimateLocked
	}

	updated, err := u.repo.UpdateCanceled(ctx, e.ID, true, u.now().UTC())
	if err != nil {
		return entities.Estimate{}, &PersistenceError{Op: "cancel estimate", ID: e.ID, Err: err}
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	log.Printf("[estimate][usecase] canceled estimate_id=%s", e.ID)
	return updated, nil
}

func (u *EstimateUseCase) SetEscrow(ctx context.Context, id string, inEscrow bool, role entities.Role) (entities.Estimate, error) {
	if !role.CanManageEstimates() {
		return entities.Estimate{}, ErrForbiddenRole
	}
	e, err := u.GetEstimate(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.InEscrow == inEscrow {
		return e, nil
	}
	if e.MovedToOrders || e.IsCanceled {
		return entities.Estimate{}, ErrEstimateLocked
	}

	updated, err := u.repo.UpdateEscrow(ctx, e.ID, inEscrow, u.now().UTC())
	if err != nil {
		return entities.Estimate{}, &PersistenceError{Op: "update estimate escrow", ID: e.ID, Err: err}
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	log.Printf("[estimate][usecase] escrow changed estimate_id=%s in_escrow=%t", e.ID, inEscrow)
	return updated, nil
}

// ConvertToOrder turns a movable estimate into an order at the initial stage.
// The serial is allocated first; if the order write then fails the serial is
// skipped, never reused.
func (u *EstimateUseCase) ConvertToOrder(ctx context.Context, id string, role entities.Role) (entities.Order, error) {
	if !role.CanManageEstimates() {
		return entities.Order{}, ErrForbiddenRole
	}
	e, err := u.GetEstimate(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !e.IsMovable() {
		return entities.Order{}, ErrEstimateLocked
	}

	now := u.now().UTC()
	seq, err := u.serials.NextOrderSerial(ctx, now.Year())
	if err != nil {
		return entities.Order{}, &PersistenceError{Op: "allocate order serial", ID: e.ID, Err: err}
	}

	order := entities.Order{
		ID:          uuid.NewString(),
		ClientID:    e.ClientID,
		EstimateID:  e.ID,
		OrderSerial: entities.FormatOrderSerial(now.Year(), seq),
		JobName:     e.JobName,
		Quantity:    e.Quantity,
		TotalCost:   e.Calculations.TotalCost,
		Stage:       entities.StageNotStarted,
		Status:      entities.StatusForStage(entities.StageNotStarted),
		CreatedAt:   now,
		LastUpdated: now,
	}
	created, err := u.orders.CreateFromEstimate(ctx, order, e.ID, now)
	if err != nil {
		log.Printf("[estimate][usecase] convert failed estimate_id=%s serial=%s err=%v", e.ID, order.OrderSerial, err)
		return entities.Order{}, &PersistenceError{Op: "convert estimate", ID: e.ID, Err: err}
	}
	if created.ID == "" {
		return entities.Order{}, ErrEstimateLocked
	}

	log.Printf("[estimate][usecase] converted estimate_id=%s order_id=%s serial=%s", e.ID, created.ID, created.OrderSerial)
	return created, nil
}
