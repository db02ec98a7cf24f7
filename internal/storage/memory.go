package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Arjit-Adhikari/qr-order/internal/models"
)

// InMemoryStore backs the test suite and MOCK_STORE local runs. It mirrors
// the MongoStore contract, including sort order and ErrNotFound semantics.
type InMemoryStore struct {
	mutex  sync.RWMutex
	menu   []models.MenuItem
	orders []models.Order
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) ListAvailableMenu(ctx context.Context) ([]models.MenuItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := []models.MenuItem{}
	for _, item := range s.menu {
		if item.IsAvailable {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

func (s *InMemoryStore) CountMenu(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.menu)), nil
}

func (s *InMemoryStore) InsertMenuItems(ctx context.Context, items []models.MenuItem) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.menu = append(s.menu, items...)
	return len(items), nil
}

func (s *InMemoryStore) ReplaceMenu(ctx context.Context, items []models.MenuItem) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.menu = append([]models.MenuItem{}, items...)
	return len(items), nil
}

func (s *InMemoryStore) InsertOrder(ctx context.Context, order *models.Order) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.orders = append(s.orders, *order)
	return nil
}

func (s *InMemoryStore) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	orders := append([]models.Order{}, s.orders...)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (s *InMemoryStore) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) DeleteOrder(ctx context.Context, orderID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) Close(ctx context.Context) error {
	return nil
}
