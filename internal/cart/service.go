package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zamtimber/shop/internal/catalog"
	"github.com/zamtimber/shop/internal/logging"
	"github.com/zamtimber/shop/internal/models"
	"github.com/zamtimber/shop/internal/storage"
)

const slotKeyPrefix = "cart:"

// DefaultProcessingDelay is the simulated order-processing latency applied
// during checkout.
const DefaultProcessingDelay = 1500 * time.Millisecond

// Summary is the cart read model: the lines plus the derived aggregates,
// recomputed from the current items on every call.
type Summary struct {
	Items []models.CartLineItem `json:"items"`
	Count int                   `json:"count"`
	Total float64               `json:"total"`
}

// Receipt is the simulated order-placement result. Orders are not stored
// anywhere; the receipt is all the caller gets.
type Receipt struct {
	OrderID   string                `json:"order_id"`
	Items     []models.CartLineItem `json:"items"`
	Total     float64               `json:"total"`
	Status    string                `json:"status"`
	CreatedAt int64                 `json:"created_at"`
}

// Service owns one cart per session. Every mutation re-serializes the full
// line-item collection to the storage slot before returning, so the slot
// always mirrors the in-memory state.
type Service struct {
	Catalog         *catalog.Catalog
	Slot            storage.Slot
	ProcessingDelay time.Duration

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewService(cat *catalog.Catalog, slot storage.Slot) *Service {
	return &Service{
		Catalog:         cat,
		Slot:            slot,
		ProcessingDelay: DefaultProcessingDelay,
		carts:           make(map[string]*Cart),
	}
}

// cartFor returns the session's cart, loading it from the slot on first
// touch. Absent or corrupt slot data yields an empty cart: a broken saved
// cart is logged and discarded, never surfaced to the shopper.
func (s *Service) cartFor(ctx context.Context, sessionID string) *Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := New()
	data, err := s.Slot.Load(ctx, slotKeyPrefix+sessionID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		logging.FromContext(ctx).Error("cart slot read failed", "session", sessionID, "error", err)
	default:
		var items []models.CartLineItem
		if err := json.Unmarshal(data, &items); err != nil {
			logging.FromContext(ctx).Error("saved cart is corrupt, starting empty", "session", sessionID, "error", err)
		} else {
			c = FromItems(items)
		}
	}

	s.carts[sessionID] = c
	return c
}

func (s *Service) persist(ctx context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.Slot.Save(ctx, slotKeyPrefix+sessionID, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Service) Summary(ctx context.Context, sessionID string) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(ctx, sessionID)
	return Summary{Items: c.Items(), Count: c.Count(), Total: c.Total()}
}

// Add puts quantity units of the product into the session's cart, merging
// into an existing line when one exists. Unknown product ids fail with
// ErrNotFound, non-positive quantities with ErrValidation.
func (s *Service) Add(ctx context.Context, sessionID string, productID, quantity int) (Mutation, error) {
	product, err := s.Catalog.Product(productID)
	if err != nil {
		return Mutation{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(ctx, sessionID)
	m, err := c.Add(product, quantity)
	if err != nil {
		return Mutation{}, err
	}
	if err := s.persist(ctx, sessionID, c); err != nil {
		return Mutation{}, err
	}
	return m, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) (Mutation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(ctx, sessionID)
	m, ok := c.UpdateQuantity(productID, quantity)
	if !ok {
		return Mutation{}, fmt.Errorf("product %d not in cart: %w", productID, ErrNotFound)
	}
	if err := s.persist(ctx, sessionID, c); err != nil {
		return Mutation{}, err
	}
	return m, nil
}

func (s *Service) Remove(ctx context.Context, sessionID string, productID int) (Mutation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(ctx, sessionID)
	m, ok := c.Remove(productID)
	if !ok {
		return Mutation{}, fmt.Errorf("product %d not in cart: %w", productID, ErrNotFound)
	}
	if err := s.persist(ctx, sessionID, c); err != nil {
		return Mutation{}, err
	}
	return m, nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) (Mutation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(ctx, sessionID)
	m := c.Clear()
	if err := s.persist(ctx, sessionID, c); err != nil {
		return Mutation{}, err
	}
	return m, nil
}

// Checkout simulates order placement: it waits out the processing delay,
// issues a receipt for the current lines and clears the cart. There is no
// failure path once processing starts, only context cancellation.
func (s *Service) Checkout(ctx context.Context, sessionID string) (Receipt, error) {
	s.mu.Lock()
	c := s.cartFor(ctx, sessionID)
	items := c.Items()
	total := c.Total()
	s.mu.Unlock()

	if len(items) == 0 {
		return Receipt{}, fmt.Errorf("no items in cart: %w", ErrValidation)
	}

	select {
	case <-time.After(s.ProcessingDelay):
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}

	receipt := Receipt{
		OrderID:   uuid.NewString(),
		Items:     items,
		Total:     total,
		Status:    "confirmed",
		CreatedAt: time.Now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.Clear()
	if err := s.persist(ctx, sessionID, c); err != nil {
		logging.FromContext(ctx).Error("cart clear after checkout failed", "session", sessionID, "error", err)
	}
	return receipt, nil
}
