package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/services"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
)

func menuFixture(names ...string) []models.MenuItem {
	now := time.Now().UTC()
	items := make([]models.MenuItem, len(names))
	for i, name := range names {
		items[i] = models.MenuItem{
			Name:        name,
			Category:    models.DefaultCategory,
			IsAvailable: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return items
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu-seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSeederPopulatesEmptyMenu(t *testing.T) {
	store := storage.NewInMemoryStore()
	path := writeSeedFile(t, `[
		{"name": "Espresso", "price": 2, "category": "Drinks"},
		{"name": "Soup", "price": 4, "category": "Starters", "isAvailable": false}
	]`)

	services.NewSeeder(store, logger.NewLogger(), path).Run(context.Background())

	count, err := store.CountMenu(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	items, err := store.ListAvailableMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Espresso", items[0].Name)
}

func TestSeederIsIdempotent(t *testing.T) {
	store := storage.NewInMemoryStore()
	path := writeSeedFile(t, `[{"name": "Espresso", "price": 2}]`)
	seeder := services.NewSeeder(store, logger.NewLogger(), path)

	seeder.Run(context.Background())
	seeder.Run(context.Background())

	count, err := store.CountMenu(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "second run must neither duplicate nor clear")
}

func TestSeederSkipsPopulatedMenu(t *testing.T) {
	store := storage.NewInMemoryStore()
	_, err := store.InsertMenuItems(context.Background(), menuFixture("Existing Item"))
	require.NoError(t, err)

	path := writeSeedFile(t, `[{"name": "Espresso", "price": 2}]`)
	services.NewSeeder(store, logger.NewLogger(), path).Run(context.Background())

	count, err := store.CountMenu(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSeederSwallowsMissingFile(t *testing.T) {
	store := storage.NewInMemoryStore()
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	services.NewSeeder(store, logger.NewLogger(), path).Run(context.Background())

	count, err := store.CountMenu(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestSeederSwallowsParseError(t *testing.T) {
	store := storage.NewInMemoryStore()
	path := writeSeedFile(t, `{not valid json`)

	services.NewSeeder(store, logger.NewLogger(), path).Run(context.Background())

	count, err := store.CountMenu(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
