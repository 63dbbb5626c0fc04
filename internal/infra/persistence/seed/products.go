// Package seed holds the starter menu used to populate an empty product store.
package seed

import (
	"github.com/shopspring/decimal"

	"brewmenu/internal/domain/entity"
)

const imageBase = "https://images.unsplash.com/"

// Products returns fresh copies of the starter menu in display order, newest first.
// IDs and timestamps are left for the store to assign.
func Products() []*entity.Product {
	return []*entity.Product{
		{
			Name:        "Espresso",
			Description: "Rich and bold single shot of premium espresso",
			Price:       decimal.RequireFromString("3.50"),
			ImageURL:    imageBase + "photo-1510591509098-f4fdc6d0ff04?w=400",
			Label:       entity.LabelPopular,
			Category:    entity.CategoryCoffee,
		},
		{
			Name:        "Matcha Latte",
			Description: "Creamy ceremonial grade matcha with steamed milk",
			Price:       decimal.RequireFromString("5.50"),
			ImageURL:    imageBase + "photo-1515823064-d6e0c04616a7?w=400",
			Label:       entity.LabelNew,
			Category:    entity.CategoryTea,
		},
		{
			Name:        "Caramel Macchiato",
			Description: "Espresso with vanilla, steamed milk and caramel drizzle",
			Price:       decimal.RequireFromString("5.00"),
			ImageURL:    imageBase + "photo-1485808191679-5f86510681a2?w=400",
			Label:       entity.LabelBestseller,
			Category:    entity.CategoryCoffee,
		},
		{
			Name:        "Berry Smoothie",
			Description: "Mixed berries blended with yogurt and honey",
			Price:       decimal.RequireFromString("6.00"),
			ImageURL:    imageBase + "photo-1553530666-ba11a7da3888?w=400",
			Category:    entity.CategorySmoothie,
		},
		{
			Name:        "Chai Latte",
			Description: "Spiced black tea with steamed milk and cinnamon",
			Price:       decimal.RequireFromString("4.50"),
			ImageURL:    imageBase + "photo-1557006021-b85faa2bc5e2?w=400",
			Label:       entity.LabelPopular,
			Category:    entity.CategoryTea,
		},
		{
			Name:        "Cold Brew",
			Description: "Smooth cold brewed coffee steeped for 20 hours",
			Price:       decimal.RequireFromString("4.00"),
			ImageURL:    imageBase + "photo-1461023058943-07fcbe16d735?w=400",
			Label:       entity.LabelNew,
			Category:    entity.CategoryCoffee,
		},
	}
}
