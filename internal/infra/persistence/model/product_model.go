package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Overrides live in per-language columns.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(200);not null"`
	NameZh        *string         `gorm:"type:varchar(200);column:name_zh"`
	NameVi        *string         `gorm:"type:varchar(200);column:name_vi"`
	Description   string          `gorm:"type:text;not null;default:''"`
	DescriptionZh *string         `gorm:"type:text;column:description_zh"`
	DescriptionVi *string         `gorm:"type:text;column:description_vi"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Image         string          `gorm:"type:text;not null;default:''"`
	Label         *string         `gorm:"type:varchar(20)"`
	Category      string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&ProductModel{},
	}
}
