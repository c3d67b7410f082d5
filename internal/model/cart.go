package model

import (
	"time"

	"github.com/google/uuid"
)

// Cart is not a table: carts live in the state store (Redis or memory) as
// JSON under "cart:<id>" with a TTL, keyed by a client-held cart id.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
}

// TotalQuantity sums item quantities across the cart.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
