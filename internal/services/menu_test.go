package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/services"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int { return &i }

func newMenuService() (*services.MenuService, *storage.InMemoryStore) {
	store := storage.NewInMemoryStore()
	return services.NewMenuService(store, logger.NewLogger()), store
}

func TestReplaceAllRejectsEmptyInput(t *testing.T) {
	svc, _ := newMenuService()

	_, err := svc.ReplaceAll(context.Background(), nil)
	assert.ErrorIs(t, err, services.ErrEmptyItems)

	_, err = svc.ReplaceAll(context.Background(), []models.MenuItemInput{})
	assert.ErrorIs(t, err, services.ErrEmptyItems)
}

func TestReplaceAllNormalizesDescriptors(t *testing.T) {
	svc, _ := newMenuService()

	count, err := svc.ReplaceAll(context.Background(), []models.MenuItemInput{
		{Name: "  Espresso  ", Price: floatPtr(2), Category: " Drinks "},
		{Name: "Mystery Dish"}, // no price, no category, no availability
		{Name: "Old Special", Price: floatPtr(-4), IsAvailable: boolPtr(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	items, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2, "unavailable item must be filtered out")

	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, "Drinks", items[0].Category)
	assert.Equal(t, 2.0, items[0].Price)
	assert.True(t, items[0].IsAvailable)

	assert.Equal(t, "Mystery Dish", items[1].Name)
	assert.Equal(t, models.DefaultCategory, items[1].Category)
	assert.Equal(t, 0.0, items[1].Price)
}

func TestReplaceAllThenListSortsByCategoryThenName(t *testing.T) {
	svc, _ := newMenuService()

	_, err := svc.ReplaceAll(context.Background(), []models.MenuItemInput{
		{Name: "Tiramisu", Price: floatPtr(5), Category: "Desserts"},
		{Name: "Espresso", Price: floatPtr(2), Category: "Drinks"},
		{Name: "Brownie", Price: floatPtr(4.5), Category: "Desserts"},
		{Name: "Lemonade", Price: floatPtr(3), Category: "Drinks"},
	})
	require.NoError(t, err)

	items, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	names := []string{}
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Brownie", "Tiramisu", "Espresso", "Lemonade"}, names)
}

func TestReplaceAllIsDestructive(t *testing.T) {
	svc, _ := newMenuService()

	_, err := svc.ReplaceAll(context.Background(), []models.MenuItemInput{
		{Name: "First Menu Item", Price: floatPtr(1)},
	})
	require.NoError(t, err)

	count, err := svc.ReplaceAll(context.Background(), []models.MenuItemInput{
		{Name: "Second Menu Item", Price: floatPtr(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	items, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Second Menu Item", items[0].Name)
}
