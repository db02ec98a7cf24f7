package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arjit-Adhikari/qr-order/internal/models"
)

func TestOrderItemNormalize(t *testing.T) {
	price := 4.5
	negative := -3.0
	qty := 2
	zero := 0

	tests := []struct {
		name   string
		input  models.OrderItemInput
		want   models.OrderItem
		wantOK bool
	}{
		{
			name:   "complete item",
			input:  models.OrderItemInput{Name: "Soup", Price: &price, Quantity: &qty},
			want:   models.OrderItem{Name: "Soup", Price: 4.5, Quantity: 2},
			wantOK: true,
		},
		{
			name:   "name trimmed, defaults applied",
			input:  models.OrderItemInput{Name: "  Pizza  "},
			want:   models.OrderItem{Name: "Pizza", Price: 0, Quantity: 1},
			wantOK: true,
		},
		{
			name:   "negative price clamps to zero",
			input:  models.OrderItemInput{Name: "Soup", Price: &negative},
			want:   models.OrderItem{Name: "Soup", Price: 0, Quantity: 1},
			wantOK: true,
		},
		{
			name:   "empty name dropped",
			input:  models.OrderItemInput{Name: "   ", Quantity: &qty},
			wantOK: false,
		},
		{
			name:   "explicit zero quantity dropped",
			input:  models.OrderItemInput{Name: "Soup", Quantity: &zero},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.input.Normalize()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{"pending", "preparing", "ready", "served", "cancelled"} {
		assert.True(t, models.ValidStatus(s), string(s))
	}
	for _, s := range []models.OrderStatus{"", "bogus", "Pending", "done"} {
		assert.False(t, models.ValidStatus(s), string(s))
	}
}
