package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
	"github.com/Sarvesh-GanesanW/enterprises/utils"
	"github.com/shopspring/decimal"
)

var ErrNotInCart = errors.New("item not in cart")

// CartService is the single shared cart store for the process. It mirrors
// the remote cart: the snapshot is replaced wholesale by every successful
// fetch, and every mutation goes to the backend first and then re-fetches.
// Nothing is applied optimistically, so a failed mutation leaves the
// snapshot consistent with the backend. Concurrent writers from other
// processes are last-fetch-wins.
type CartService struct {
	repo *repositories.CartRepository

	mu      sync.RWMutex
	entries []models.CartEntry
}

func NewCartService(repo *repositories.CartRepository) *CartService {
	return &CartService{repo: repo, entries: []models.CartEntry{}}
}

// Refresh replaces the snapshot with the backend's current cart. On failure
// the prior snapshot is kept untouched.
func (s *CartService) Refresh(ctx context.Context) error {
	entries, err := s.repo.GetCart(ctx)
	if err != nil {
		log.Printf("Error fetching cart: %v", err)
		return err
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Entries returns a copy of the raw snapshot in backend order.
func (s *CartService) Entries() []models.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]models.CartEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *CartService) Add(ctx context.Context, item models.CartEntry) error {
	if err := s.repo.AddItem(ctx, item); err != nil {
		log.Printf("Error adding to cart: %v", err)
		return err
	}
	return s.Refresh(ctx)
}

func (s *CartService) Remove(ctx context.Context, id int) error {
	if err := s.repo.RemoveItem(ctx, id); err != nil {
		log.Printf("Error removing from cart: %v", err)
		return err
	}
	return s.Refresh(ctx)
}

func (s *CartService) SetQuantity(ctx context.Context, id, quantity int) error {
	if err := s.repo.UpdateQuantity(ctx, id, quantity); err != nil {
		log.Printf("Error updating cart quantity: %v", err)
		return err
	}
	return s.Refresh(ctx)
}

// Grouped derives the display view: one row per distinct title in
// first-seen order, quantities summed, absent quantity read as 1. The
// projection is recomputed from scratch on every call and is idempotent
// over the snapshot. Linear search is fine at cart sizes of tens of items.
func (s *CartService) Grouped() []models.GroupedCartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return groupEntries(s.entries)
}

func groupEntries(entries []models.CartEntry) []models.GroupedCartItem {
	grouped := []models.GroupedCartItem{}
	for _, entry := range entries {
		found := false
		for i := range grouped {
			if grouped[i].Title == entry.Title {
				grouped[i].Quantity += entry.EffectiveQuantity()
				found = true
				break
			}
		}
		if !found {
			grouped = append(grouped, models.GroupedCartItem{
				RepresentativeID: entry.ID,
				Title:            entry.Title,
				Description:      entry.Description,
				RetailPrice:      entry.RetailPrice,
				WholesalePrice:   entry.WholesalePrice,
				Image:            entry.Image,
				Quantity:         entry.EffectiveQuantity(),
			})
		}
	}
	return grouped
}

// Total sums retail price times quantity over the grouped rows.
func (s *CartService) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, row := range s.Grouped() {
		amount, err := utils.ParseAmount(row.RetailPrice)
		if err != nil {
			return decimal.Zero, fmt.Errorf("price for %q: %w", row.Title, err)
		}
		total = total.Add(amount.Mul(decimal.NewFromInt(int64(row.Quantity))))
	}
	return total, nil
}

// representative returns the first raw entry in backend order whose title
// matches, which is the entry grouped increments and decrements target.
func (s *CartService) representative(title string) (models.CartEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.entries {
		if entry.Title == title {
			return entry, true
		}
	}
	return models.CartEntry{}, false
}

// Increment adds one unit to the grouped row with the given title by
// posting a +1 delta on its representative entry.
func (s *CartService) Increment(ctx context.Context, title string) error {
	entry, ok := s.representative(title)
	if !ok {
		return ErrNotInCart
	}
	entry.Quantity = 1
	return s.Add(ctx, entry)
}

// Decrement removes one unit from the grouped row with the given title: a
// −1 delta on the representative entry while the grouped quantity is above
// one, a delete of the representative once it reaches exactly one.
func (s *CartService) Decrement(ctx context.Context, title string) error {
	entry, ok := s.representative(title)
	if !ok {
		return ErrNotInCart
	}

	groupedQty := 0
	for _, row := range s.Grouped() {
		if row.Title == title {
			groupedQty = row.Quantity
			break
		}
	}

	if groupedQty > 1 {
		entry.Quantity = -1
		return s.Add(ctx, entry)
	}
	return s.Remove(ctx, entry.ID)
}
