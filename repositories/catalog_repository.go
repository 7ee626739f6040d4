package repositories

import "github.com/Sarvesh-GanesanW/enterprises/models"

// The catalog is fixed data: three blends, priced per 100g with a wholesale
// tier. Catalog ids are stable and distinct from the per-cart-line ids the
// backend assigns.
var teaCatalog = []models.TeaItem{
	{
		CatalogID:       1,
		Title:           "Premium Tea",
		Description:     "Exquisite blends for the discerning tea connoisseur.",
		RetailPrice:     "₹250/100g",
		WholesalePrice:  "₹220/100g (MOQ: 5kg)",
		Image:           "/images/premium-tea.jpg",
		LongDescription: "Our Premium Tea is a luxurious blend of the finest tea leaves, carefully selected from the most renowned tea gardens. This exquisite tea offers a rich, full-bodied flavor with subtle notes of oak and a hint of sweetness. Perfect for those special moments when only the best will do.",
	},
	{
		CatalogID:       2,
		Title:           "Classic Tea",
		Description:     "Our everyday blends for a perfect cup anytime, anywhere.",
		RetailPrice:     "₹180/100g",
		WholesalePrice:  "₹160/100g (MOQ: 10kg)",
		Image:           "/images/classic-tea.jpg",
		LongDescription: "The Classic Tea is our signature blend, offering a balanced and refreshing taste that is perfect for any time of day. With its smooth flavor and satisfying aroma, this tea is a staple for tea lovers who appreciate consistency and quality in every cup.",
	},
	{
		CatalogID:       3,
		Title:           "Therapeutic Tea",
		Description:     "Specially crafted blends for health and wellness.",
		RetailPrice:     "₹230/100g",
		WholesalePrice:  "₹200/100g (MOQ: 5kg)",
		Image:           "/images/therapeutic-tea.jpg",
		LongDescription: "Our Therapeutic Tea is a carefully crafted blend designed to promote health and wellness. Infused with natural herbs and spices known for their healing properties, this tea offers a soothing and rejuvenating experience. It's the perfect choice for those looking to incorporate the benefits of traditional herbal remedies into their daily routine.",
	},
}

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) GetAll() []models.TeaItem {
	items := make([]models.TeaItem, len(teaCatalog))
	copy(items, teaCatalog)
	return items
}

func (r *CatalogRepository) GetByID(id int) (*models.TeaItem, bool) {
	for _, item := range teaCatalog {
		if item.CatalogID == id {
			found := item
			return &found, true
		}
	}
	return nil, false
}

func (r *CatalogRepository) GetByTitle(title string) (*models.TeaItem, bool) {
	for _, item := range teaCatalog {
		if item.Title == title {
			found := item
			return &found, true
		}
	}
	return nil, false
}
