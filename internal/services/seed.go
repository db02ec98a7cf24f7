package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Arjit-Adhikari/qr-order/internal/logger"
	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/storage"
)

// Seeder populates the menu collection from a static JSON file the first
// time the service starts against an empty database.
type Seeder struct {
	store storage.Store
	log   *logger.Logger
	path  string
}

func NewSeeder(store storage.Store, log *logger.Logger, path string) *Seeder {
	return &Seeder{
		store: store,
		log:   log,
		path:  path,
	}
}

// Run is idempotent and never fails startup: a populated collection, a
// missing seed file, a parse error or a storage error all log and return.
func (s *Seeder) Run(ctx context.Context) {
	count, err := s.store.CountMenu(ctx)
	if err != nil {
		s.log.Warn("SEED", "Could not check menu collection: "+err.Error())
		return
	}
	if count > 0 {
		s.log.LogProcess("SEED", fmt.Sprintf("Menu already has %d items, skipping seed", count))
		return
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.LogProcess("SEED", "No seed file at "+s.path+", skipping")
		return
	}
	if err != nil {
		s.log.Warn("SEED", "Could not read seed file: "+err.Error())
		return
	}

	var inputs []models.MenuItemInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		s.log.Warn("SEED", "Could not parse seed file: "+err.Error())
		return
	}
	if len(inputs) == 0 {
		s.log.LogProcess("SEED", "Seed file is empty, skipping")
		return
	}

	now := time.Now().UTC()
	items := make([]models.MenuItem, len(inputs))
	for i, in := range inputs {
		items[i] = in.Normalize(now)
	}

	inserted, err := s.store.InsertMenuItems(ctx, items)
	if err != nil {
		s.log.Warn("SEED", "Could not insert seed items: "+err.Error())
		return
	}

	s.log.LogProcess("SEED", fmt.Sprintf("Seeded menu with %d items", inserted))
}
