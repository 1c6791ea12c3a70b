package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type dispatcher interface {
	OrderSubmitted(ctx context.Context, order *models.Order) error
	OrderDecided(ctx context.Context, order *models.Order) error
}

// Service owns the order lifecycle: submission, status reads and the admin
// decision that moves a pending order to its terminal state.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
	CheckStatus(ctx context.Context, orderID string) (*models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.Order, error)
	Decide(ctx context.Context, orderID string, status enums.OrderStatus, adminNotes string) (*models.Order, error)
}

type service struct {
	repo     Repository
	tx       txRunner
	notify   dispatcher
	logg     *logger.Logger
	idPrefix string
	now      func() time.Time
}

type ServiceParams struct {
	Repository Repository
	Tx         txRunner
	Dispatcher dispatcher
	Logger     *logger.Logger
	IDPrefix   string
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repository == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Dispatcher == nil {
		return nil, fmt.Errorf("notification dispatcher required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:     params.Repository,
		tx:       params.Tx,
		notify:   params.Dispatcher,
		logg:     params.Logger,
		idPrefix: params.IDPrefix,
		now:      time.Now,
	}, nil
}

// Submit validates, persists and announces a new order. Persistence failure
// aborts the submission; notification failure never does. Anything
// unexpected is folded into a failed result rather than escaping.
func (s *service) Submit(ctx context.Context, input SubmitInput) (result *SubmitResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logg.Error(ctx, "order submission panicked", fmt.Errorf("%v", r))
			result = &SubmitResult{Success: false, Message: "Failed to submit order. Please try again."}
			err = nil
		}
	}()

	if verr := input.Validate(); verr != nil {
		return nil, verr
	}

	order := &models.Order{
		ID:            NewOrderID(s.idPrefix),
		SessionID:     input.SessionID,
		Status:        enums.OrderStatusPending,
		CustomerName:  strings.TrimSpace(input.Customer.Name),
		CustomerEmail: strings.TrimSpace(input.Customer.Email),
		CustomerPhone: strings.TrimSpace(input.Customer.Phone),
		EventDate:     input.EventDate,
		EventLocation: input.EventLocation,
		GuestCount:    input.GuestCount,
		Items:         types.CloneLineItems(input.Items),
	}
	for _, item := range order.Items {
		order.TotalItems += item.Quantity
		order.TotalPrice = order.TotalPrice.Add(item.Subtotal())
	}

	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, order)
	})
	if txErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, txErr, "save order")
	}

	lctx := s.logg.WithOrderID(s.logg.WithSessionID(ctx, order.SessionID), order.ID)
	s.logg.Info(lctx, "order submitted, awaiting admin approval")

	if nerr := s.notify.OrderSubmitted(ctx, order); nerr != nil {
		s.logg.Error(lctx, "order notifications incomplete", nerr)
	}

	return &SubmitResult{
		Success: true,
		OrderID: order.ID,
		Status:  string(order.Status),
		Message: "Order submitted successfully. Awaiting admin approval.",
	}, nil
}

func (s *service) CheckStatus(ctx context.Context, orderID string) (*models.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	orders, err := s.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list session orders")
	}
	return orders, nil
}

// Decide applies the admin approve/reject decision and tells the customer.
// The status move is one-way: a decided order cannot change again.
func (s *service) Decide(ctx context.Context, orderID string, status enums.OrderStatus, adminNotes string) (*models.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !status.IsValid() || !status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("status must be approved or rejected, got %q", status))
	}

	var decided *models.Order
	txErr := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := repo.FindByID(ctx, orderID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
		}
		if !order.Status.CanTransitionTo(status) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("order is already %s", order.Status))
		}

		changedAt := s.now().UTC()
		if err := repo.UpdateStatus(ctx, order.ID, status, adminNotes, changedAt); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}

		order.Status = status
		order.Notes = adminNotes
		order.StatusChangedAt = &changedAt
		decided = order
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	lctx := s.logg.WithOrderID(ctx, decided.ID)
	s.logg.Info(s.logg.WithField(lctx, "status", string(decided.Status)), "order decided")

	if nerr := s.notify.OrderDecided(ctx, decided); nerr != nil {
		s.logg.Error(lctx, "customer decision notification failed", nerr)
	}

	return decided, nil
}
