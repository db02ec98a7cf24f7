package storage

import (
	"context"
	"errors"

	"github.com/Arjit-Adhikari/qr-order/internal/models"
)

// ErrNotFound is returned when an order id matches nothing.
var ErrNotFound = errors.New("not found")

type Store interface {
	// Menu operations
	ListAvailableMenu(ctx context.Context) ([]models.MenuItem, error)
	CountMenu(ctx context.Context) (int64, error)
	InsertMenuItems(ctx context.Context, items []models.MenuItem) (int, error)
	ReplaceMenu(ctx context.Context, items []models.MenuItem) (int, error)

	// Order operations
	InsertOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context, limit int) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	DeleteOrder(ctx context.Context, orderID string) error

	Close(ctx context.Context) error
}
