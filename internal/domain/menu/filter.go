package menu

import (
	"brewmenu/internal/domain/entity"
)

// FilterByCategory returns the products whose category equals c exactly, in their original order.
// "all" returns every product. The input slice is never modified.
func FilterByCategory(products []*entity.Product, c entity.Category) []*entity.Product {
	if c == entity.CategoryAll {
		out := make([]*entity.Product, len(products))
		copy(out, products)

		return out
	}

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil && p.Category == c {
			out = append(out, p)
		}
	}

	return out
}
