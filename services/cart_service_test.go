package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Sarvesh-GanesanW/enterprises/libs"
	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tolerance from the totals property: 0.01 currency units
func decimalCent() decimal.Decimal {
	return decimal.RequireFromString("0.01")
}

// fakeBackend is an in-memory stand-in for the remote cart store. It keeps
// one entry per title and applies the delta convention on POST.
type fakeBackend struct {
	mu      sync.Mutex
	entries []models.CartEntry
	nextID  int
}

func newFakeBackend(seed ...models.CartEntry) *fakeBackend {
	b := &fakeBackend{nextID: 1}
	for _, e := range seed {
		e.ID = b.nextID
		b.nextID++
		b.entries = append(b.entries, e)
	}
	return b
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			entries := b.entries
			if entries == nil {
				entries = []models.CartEntry{}
			}
			json.NewEncoder(w).Encode(entries)
		case http.MethodPost:
			var item models.CartEntry
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			delta := item.Quantity
			if delta == 0 {
				delta = 1
			}
			for i := range b.entries {
				if b.entries[i].Title == item.Title {
					b.entries[i].Quantity = b.entries[i].EffectiveQuantity() + delta
					if b.entries[i].Quantity <= 0 {
						b.entries = append(b.entries[:i], b.entries[i+1:]...)
					}
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			item.ID = b.nextID
			b.nextID++
			item.Quantity = delta
			b.entries = append(b.entries, item)
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/cart/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/cart/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.Method {
		case http.MethodDelete:
			for i := range b.entries {
				if b.entries[i].ID == id {
					b.entries = append(b.entries[:i], b.entries[i+1:]...)
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			var body struct {
				Quantity int `json:"quantity"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for i := range b.entries {
				if b.entries[i].ID == id {
					b.entries[i].Quantity = body.Quantity
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func newTestCartService(t *testing.T, seed ...models.CartEntry) (*CartService, *httptest.Server) {
	t.Helper()
	backend := newFakeBackend(seed...)
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := libs.NewBackendClient(server.URL, 5*time.Second)
	return NewCartService(repositories.NewCartRepository(client)), server
}

func classicTea(quantity int) models.CartEntry {
	return models.CartEntry{
		Title:       "Classic Tea",
		Description: "Our everyday blends for a perfect cup anytime, anywhere.",
		RetailPrice: "₹180/100g",
		Quantity:    quantity,
	}
}

func TestRefreshReplacesSnapshotWholesale(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(2))

	require.NoError(t, svc.Refresh(context.Background()))
	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestRefreshFailureKeepsPriorState(t *testing.T) {
	svc, server := newTestCartService(t, classicTea(2))
	require.NoError(t, svc.Refresh(context.Background()))

	server.Close()
	err := svc.Refresh(context.Background())
	require.Error(t, err)

	// snapshot untouched by the failed fetch
	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestGroupingSumsQuantitiesByTitle(t *testing.T) {
	entries := []models.CartEntry{
		{ID: 1, Title: "Classic Tea", RetailPrice: "₹180/100g", Quantity: 2},
		{ID: 2, Title: "Premium Tea", RetailPrice: "₹250/100g"},
		{ID: 3, Title: "Classic Tea", RetailPrice: "₹180/100g", Quantity: 1},
	}

	grouped := groupEntries(entries)
	require.Len(t, grouped, 2)
	assert.Equal(t, "Classic Tea", grouped[0].Title)
	assert.Equal(t, 3, grouped[0].Quantity)
	assert.Equal(t, 1, grouped[0].RepresentativeID)
	assert.Equal(t, "Premium Tea", grouped[1].Title)
	assert.Equal(t, 1, grouped[1].Quantity, "absent quantity reads as 1")
}

func TestGroupingIsIdempotent(t *testing.T) {
	entries := []models.CartEntry{
		{ID: 1, Title: "Classic Tea", RetailPrice: "₹180/100g", Quantity: 2},
		{ID: 2, Title: "Premium Tea", RetailPrice: "₹250/100g", Quantity: 1},
		{ID: 3, Title: "Classic Tea", RetailPrice: "₹180/100g", Quantity: 4},
	}

	once := groupEntries(entries)

	// flatten the grouped rows back into entries and group again
	flattened := make([]models.CartEntry, 0, len(once))
	for _, row := range once {
		flattened = append(flattened, models.CartEntry{
			ID:          row.RepresentativeID,
			Title:       row.Title,
			RetailPrice: row.RetailPrice,
			Quantity:    row.Quantity,
		})
	}
	twice := groupEntries(flattened)

	assert.Equal(t, once, twice)
}

func TestTotalScenario(t *testing.T) {
	// cart = [{id:1, title:"Classic Tea", retailPrice:"₹180/100g", quantity:2}]
	svc, _ := newTestCartService(t, classicTea(2))
	require.NoError(t, svc.Refresh(context.Background()))

	grouped := svc.Grouped()
	require.Len(t, grouped, 1)
	assert.Equal(t, 2, grouped[0].Quantity)

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, "360.00", total.StringFixed(2))
}

func TestTotalOrderIndependent(t *testing.T) {
	forward := []models.CartEntry{
		{ID: 1, Title: "Classic Tea", RetailPrice: "₹180/100g", Quantity: 2},
		{ID: 2, Title: "Premium Tea", RetailPrice: "₹250/100g", Quantity: 1},
		{ID: 3, Title: "Therapeutic Tea", RetailPrice: "₹230/100g", Quantity: 3},
	}
	backward := []models.CartEntry{forward[2], forward[1], forward[0]}

	svcA, _ := newTestCartService(t, forward...)
	svcB, _ := newTestCartService(t, backward...)
	require.NoError(t, svcA.Refresh(context.Background()))
	require.NoError(t, svcB.Refresh(context.Background()))

	totalA, err := svcA.Total()
	require.NoError(t, err)
	totalB, err := svcB.Total()
	require.NoError(t, err)

	assert.True(t, totalA.Sub(totalB).Abs().LessThanOrEqual(decimalCent()),
		"totals differ: %s vs %s", totalA, totalB)
	assert.Equal(t, "1300.00", totalA.StringFixed(2))
}

func TestIncrementScenario(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(2))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Increment(context.Background(), "Classic Tea"))

	grouped := svc.Grouped()
	require.Len(t, grouped, 1)
	assert.Equal(t, 3, grouped[0].Quantity)

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, "540.00", total.StringFixed(2))
}

func TestDecrementAboveOneReducesByExactlyOne(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(3))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Decrement(context.Background(), "Classic Tea"))

	grouped := svc.Grouped()
	require.Len(t, grouped, 1, "row count unchanged")
	assert.Equal(t, 2, grouped[0].Quantity)
}

func TestDecrementAtOneRemovesTheRow(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(1))
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Decrement(context.Background(), "Classic Tea"))

	assert.Empty(t, svc.Grouped())
	assert.Empty(t, svc.Entries())

	total, err := svc.Total()
	require.NoError(t, err)
	assert.Equal(t, "0.00", total.StringFixed(2))
}

func TestDecrementUnknownTitle(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(1))
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Decrement(context.Background(), "Oolong")
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestRemoveRoundTrip(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(2))
	require.NoError(t, svc.Refresh(context.Background()))

	id := svc.Entries()[0].ID
	require.NoError(t, svc.Remove(context.Background(), id))

	for _, entry := range svc.Entries() {
		assert.NotEqual(t, id, entry.ID)
	}
}

func TestSetQuantityAbsolute(t *testing.T) {
	svc, _ := newTestCartService(t, classicTea(2))
	require.NoError(t, svc.Refresh(context.Background()))

	id := svc.Entries()[0].ID
	require.NoError(t, svc.SetQuantity(context.Background(), id, 5))

	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)

	// idempotent under retry
	require.NoError(t, svc.SetQuantity(context.Background(), id, 5))
	assert.Equal(t, 5, svc.Entries()[0].Quantity)
}
