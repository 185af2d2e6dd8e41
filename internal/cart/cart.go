package cart

import (
	"errors"
	"fmt"

	"github.com/zamtimber/shop/internal/models"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeUpdated Outcome = "updated"
	OutcomeRemoved Outcome = "removed"
	OutcomeCleared Outcome = "cleared"
)

// Mutation describes what a cart operation did. The cart itself never
// notifies anyone; callers decide what to do with the description.
type Mutation struct {
	Outcome Outcome              `json:"outcome"`
	Item    *models.CartLineItem `json:"item,omitempty"`
}

// Cart is an ordered collection of line items, at most one per product id.
// Insertion order is preserved for display. Methods are not safe for
// concurrent use; the owning service serializes access.
type Cart struct {
	items []models.CartLineItem
}

func New() *Cart {
	return &Cart{}
}

// FromItems builds a cart from previously persisted line items.
func FromItems(items []models.CartLineItem) *Cart {
	c := &Cart{items: make([]models.CartLineItem, len(items))}
	copy(c.items, items)
	return c
}

// Add merges quantity into an existing line for the product or appends a
// new one. Quantity must be positive: the update path floors at 1 by
// removing, and allowing a non-positive add would smuggle in the zero and
// negative stored quantities that rule exists to prevent.
func (c *Cart) Add(product models.Product, quantity int) (Mutation, error) {
	if quantity < 1 {
		return Mutation{}, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity += quantity
			item := c.items[i]
			return Mutation{Outcome: OutcomeUpdated, Item: &item}, nil
		}
	}

	line := models.CartLineItem{Product: product, Quantity: quantity}
	c.items = append(c.items, line)
	return Mutation{Outcome: OutcomeAdded, Item: &line}, nil
}

// Remove deletes the line for productID. The second return reports whether
// a line was found; a miss produces no mutation.
func (c *Cart) Remove(productID int) (Mutation, bool) {
	for i := range c.items {
		if c.items[i].ID == productID {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return Mutation{Outcome: OutcomeRemoved, Item: &removed}, true
		}
	}
	return Mutation{}, false
}

// UpdateQuantity overwrites the line's quantity. A quantity under 1
// delegates to Remove so a stored quantity can never reach zero.
func (c *Cart) UpdateQuantity(productID, quantity int) (Mutation, bool) {
	if quantity < 1 {
		return c.Remove(productID)
	}

	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			item := c.items[i]
			return Mutation{Outcome: OutcomeUpdated, Item: &item}, true
		}
	}
	return Mutation{}, false
}

// Clear empties the cart. It reports a single cleared mutation even when
// the cart was already empty.
func (c *Cart) Clear() Mutation {
	c.items = nil
	return Mutation{Outcome: OutcomeCleared}
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (c *Cart) Items() []models.CartLineItem {
	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}
