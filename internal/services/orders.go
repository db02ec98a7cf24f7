package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
	"github.com/Arjit-Adhikari/qr-order/internal/utils"
)

// MaxRecentOrders caps the list response to bound its size.
const MaxRecentOrders = 300

var (
	ErrTableRequired = errors.New("table is required")
	ErrNoValidItems  = errors.New("order needs at least one valid item")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService struct {
	store storage.Store
	log   *logger.Logger
}

func NewOrderService(store storage.Store, log *logger.Logger) *OrderService {
	return &OrderService{
		store: store,
		log:   log,
	}
}

// Place validates and normalizes a customer order, stores it as pending and
// returns its opaque identifier. Line items that normalize to nothing (empty
// name or non-positive quantity) are dropped; an order whose items all drop
// is rejected.
func (s *OrderService) Place(ctx context.Context, req models.PlaceOrderRequest) (string, error) {
	table := strings.TrimSpace(req.Table)
	if table == "" {
		return "", ErrTableRequired
	}
	if len(req.Items) == 0 {
		return "", ErrNoValidItems
	}

	items := []models.OrderItem{}
	for _, in := range req.Items {
		if item, ok := in.Normalize(); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return "", ErrNoValidItems
	}

	now := time.Now().UTC()
	order := &models.Order{
		OrderID:      utils.GenerateOrderID(),
		Table:        table,
		Items:        items,
		CustomerNote: strings.TrimSpace(req.CustomerNote),
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.InsertOrder(ctx, order); err != nil {
		s.log.Error("ORDER", "Failed to save order: "+err.Error())
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	s.log.LogOrder("PLACED", order.OrderID, fmt.Sprintf("Table %s, %d items", table, len(items)))
	return order.OrderID, nil
}

// List returns the most recent orders, newest first, capped at MaxRecentOrders.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.store.ListOrders(ctx, MaxRecentOrders)
	if err != nil {
		s.log.Error("ORDER", "Failed to list orders: "+err.Error())
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to any of the five states. No ordering between
// states is enforced; the admin may set any status from any status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	next := models.OrderStatus(status)
	if !models.ValidStatus(next) {
		return ErrInvalidStatus
	}

	err := s.store.UpdateOrderStatus(ctx, orderID, next)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		s.log.Error("ORDER", "Failed to update order "+orderID+": "+err.Error())
		return fmt.Errorf("failed to update order: %w", err)
	}

	s.log.LogOrder("STATUS", orderID, "Set to "+status)
	return nil
}

// Delete removes an order permanently.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	err := s.store.DeleteOrder(ctx, orderID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		s.log.Error("ORDER", "Failed to delete order "+orderID+": "+err.Error())
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.log.LogOrder("DELETED", orderID, "Removed by admin")
	return nil
}
