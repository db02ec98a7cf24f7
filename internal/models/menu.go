package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultCategory = "General"

// MenuItem is a sellable item. Items are only ever bulk-replaced by the
// admin seed operation, never mutated individually.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// MenuItemInput is an item descriptor as supplied by the seed file or the
// admin seed-menu endpoint. Pointer fields distinguish "absent" from zero
// values so defaults apply only when the caller said nothing.
type MenuItemInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}

// Normalize applies the descriptor defaulting rules: trimmed name, price
// defaults to 0 and is clamped non-negative, category defaults to General,
// availability defaults to true unless explicitly false.
func (in MenuItemInput) Normalize(now time.Time) MenuItem {
	price := 0.0
	if in.Price != nil && *in.Price > 0 {
		price = *in.Price
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	return MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Price:       price,
		Category:    category,
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SeedMenuRequest is the admin bulk-replace payload.
type SeedMenuRequest struct {
	Items []MenuItemInput `json:"items"`
}
