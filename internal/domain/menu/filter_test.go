package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brewmenu/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{Name: "Espresso", Category: entity.CategoryCoffee},
		{Name: "Matcha Latte", Category: entity.CategoryTea},
		{Name: "Caramel Macchiato", Category: entity.CategoryCoffee},
		{Name: "Berry Smoothie", Category: entity.CategorySmoothie},
		{Name: "Chai Latte", Category: entity.CategoryTea},
		{Name: "Cold Brew", Category: entity.CategoryCoffee},
	}
}

func names(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}

	return out
}

func TestFilterByCategory_AllKeepsOrderAndCount(t *testing.T) {
	products := sampleProducts()

	got := FilterByCategory(products, entity.CategoryAll)

	assert.Equal(t, names(products), names(got))
}

func TestFilterByCategory_CoffeeKeepsRelativeOrder(t *testing.T) {
	got := FilterByCategory(sampleProducts(), entity.CategoryCoffee)

	assert.Equal(t, []string{"Espresso", "Caramel Macchiato", "Cold Brew"}, names(got))
}

func TestFilterByCategory_EveryCategory(t *testing.T) {
	products := sampleProducts()

	for _, c := range entity.Categories {
		for _, p := range FilterByCategory(products, c) {
			assert.Equal(t, c, p.Category)
		}
	}
	assert.Empty(t, FilterByCategory(products, entity.CategoryOther))
}

func TestFilterByCategory_ExactMatchOnly(t *testing.T) {
	products := []*entity.Product{
		{Name: "A", Category: "Coffee"},
		{Name: "B", Category: "coffee-blend"},
		{Name: "C", Category: entity.CategoryCoffee},
	}

	assert.Equal(t, []string{"C"}, names(FilterByCategory(products, entity.CategoryCoffee)))
}

func TestFilterByCategory_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := names(products)

	got := FilterByCategory(products, entity.CategoryAll)
	got[0] = &entity.Product{Name: "replaced"}

	assert.Equal(t, before, names(products))
}
