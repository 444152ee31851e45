package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the identity row for a footwear listing. Stock lives in the
// Inventory row keyed by product and size.
type Product struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	BrandName   string          `gorm:"column:brand_name;not null"`
	ModelName   string          `gorm:"column:model_name;not null"`
	StyleCode   string          `gorm:"column:style_code;not null;uniqueIndex"`
	Category    string          `gorm:"column:category;not null"`
	Color       string          `gorm:"column:color"`
	Gender      string          `gorm:"column:gender"`
	RetailPrice decimal.Decimal `gorm:"column:retail_price;type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table to match the migrated schema.
func (Product) TableName() string { return "products" }
