package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sarvesh-GanesanW/enterprises/libs"
	"github.com/Sarvesh-GanesanW/enterprises/models"
)

// CartRepository is the data-access layer for the remote cart store. The
// backend is the only durable copy of the cart; every method is a plain HTTP
// call with no local bookkeeping.
type CartRepository struct {
	backend *libs.BackendClient
}

func NewCartRepository(backend *libs.BackendClient) *CartRepository {
	return &CartRepository{backend: backend}
}

func (r *CartRepository) GetCart(ctx context.Context) ([]models.CartEntry, error) {
	entries := []models.CartEntry{}
	if err := r.backend.DoJSON(ctx, http.MethodGet, "/cart", nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return entries, nil
}

// AddItem posts a tea with a delta quantity. A zero quantity is sent as-is;
// the backend reads it as 1. Negative deltas reduce an existing line.
func (r *CartRepository) AddItem(ctx context.Context, item models.CartEntry) error {
	if err := r.backend.DoJSON(ctx, http.MethodPost, "/cart", item, nil); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, id int) error {
	if err := r.backend.DoJSON(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", id), nil, nil); err != nil {
		return fmt.Errorf("remove cart item %d: %w", id, err)
	}
	return nil
}

// UpdateQuantity sets an absolute quantity for a cart line. Idempotent under
// retry, unlike the delta convention.
func (r *CartRepository) UpdateQuantity(ctx context.Context, id, quantity int) error {
	body := map[string]int{"quantity": quantity}
	if err := r.backend.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", id), body, nil); err != nil {
		return fmt.Errorf("update cart item %d: %w", id, err)
	}
	return nil
}
