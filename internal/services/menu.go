package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
)

var ErrEmptyItems = errors.New("items must be a non-empty array")

type MenuService struct {
	store storage.Store
	log   *logger.Logger
}

func NewMenuService(store storage.Store, log *logger.Logger) *MenuService {
	return &MenuService{
		store: store,
		log:   log,
	}
}

// ListAvailable returns every available item sorted by category then name.
func (s *MenuService) ListAvailable(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.store.ListAvailableMenu(ctx)
	if err != nil {
		s.log.Error("MENU", "Failed to list menu: "+err.Error())
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

// ReplaceAll destructively swaps the whole menu for the given descriptors
// and returns the number of items inserted.
func (s *MenuService) ReplaceAll(ctx context.Context, inputs []models.MenuItemInput) (int, error) {
	if len(inputs) == 0 {
		return 0, ErrEmptyItems
	}

	now := time.Now().UTC()
	items := make([]models.MenuItem, len(inputs))
	for i, in := range inputs {
		items[i] = in.Normalize(now)
	}

	count, err := s.store.ReplaceMenu(ctx, items)
	if err != nil {
		s.log.Error("MENU", "Failed to replace menu: "+err.Error())
		return 0, fmt.Errorf("failed to replace menu: %w", err)
	}

	s.log.LogProcess("MENU", fmt.Sprintf("Menu replaced with %d items", count))
	return count, nil
}
