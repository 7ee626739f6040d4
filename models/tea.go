package models

// TeaItem is one catalog product. CatalogID is stable across the catalog;
// the backend assigns a separate per-cart-line id once the item is added.
type TeaItem struct {
	CatalogID       int    `json:"catalogId,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	RetailPrice     string `json:"retailPrice"`
	WholesalePrice  string `json:"wholesalePrice"`
	Image           string `json:"image"`
	LongDescription string `json:"longDescription"`
}

// CartEntry is one backend-stored cart line: tea fields plus the
// server-assigned id and quantity. Quantity 0 means the backend omitted it
// and is read as 1.
type CartEntry struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	RetailPrice     string `json:"retailPrice"`
	WholesalePrice  string `json:"wholesalePrice"`
	Image           string `json:"image"`
	LongDescription string `json:"longDescription"`
	Quantity        int    `json:"quantity,omitempty"`
}

// EffectiveQuantity treats an absent quantity as 1.
func (e CartEntry) EffectiveQuantity() int {
	if e.Quantity <= 0 {
		return 1
	}
	return e.Quantity
}

// GroupedCartItem is a display aggregation of cart entries sharing a title.
// It is recomputed from the raw cart on every read and never persisted.
// RepresentativeID is the backend id of the first raw entry with this title;
// increment and decrement target that entry.
type GroupedCartItem struct {
	RepresentativeID int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	RetailPrice      string `json:"retailPrice"`
	WholesalePrice   string `json:"wholesalePrice"`
	Image            string `json:"image"`
	Quantity         int    `json:"quantity"`
}
