package postgres

import (
	"context"
	"time"

	"brewmenu/internal/errors"
	"brewmenu/internal/infra/persistence/model"
	"brewmenu/internal/infra/persistence/seed"

	"gorm.io/gorm"
)

// SeedProducts inserts the starter menu when the products table is empty and returns how many rows it wrote.
func SeedProducts(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}
	if count > 0 {
		return 0, nil
	}

	products := seed.Products()
	rows := make([]*model.ProductModel, 0, len(products))
	base := time.Now().UTC().Truncate(time.Second)
	for i, p := range products {
		// Seeds are listed newest first; spacing keeps that order under created_at DESC.
		p.CreatedAt = base.Add(-time.Duration(i) * time.Second)
		rows = append(rows, fromProductDomain(p))
	}

	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, errors.Wrap(err, "failed to seed products")
	}

	return len(rows), nil
}
