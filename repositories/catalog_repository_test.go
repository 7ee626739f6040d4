package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasThreeBlends(t *testing.T) {
	repo := NewCatalogRepository()

	items := repo.GetAll()
	require.Len(t, items, 3)

	titles := []string{items[0].Title, items[1].Title, items[2].Title}
	assert.Equal(t, []string{"Premium Tea", "Classic Tea", "Therapeutic Tea"}, titles)

	for _, item := range items {
		assert.NotZero(t, item.CatalogID)
		assert.NotEmpty(t, item.RetailPrice)
		assert.NotEmpty(t, item.WholesalePrice)
		assert.NotEmpty(t, item.LongDescription)
	}
}

func TestCatalogLookups(t *testing.T) {
	repo := NewCatalogRepository()

	item, ok := repo.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, "Classic Tea", item.Title)
	assert.Equal(t, "₹180/100g", item.RetailPrice)

	_, ok = repo.GetByID(99)
	assert.False(t, ok)

	item, ok = repo.GetByTitle("Premium Tea")
	require.True(t, ok)
	assert.Equal(t, 1, item.CatalogID)

	_, ok = repo.GetByTitle("Oolong")
	assert.False(t, ok)
}

func TestCatalogGetAllReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()

	items := repo.GetAll()
	items[0].Title = "mutated"

	fresh := repo.GetAll()
	assert.Equal(t, "Premium Tea", fresh[0].Title)
}
