package models

import "github.com/shopspring/decimal"

// Size is a sizing descriptor. A size row is tied to a product through the
// inventory row and is not reused across products in the current write paths.
type Size struct {
	SizeID    int64           `gorm:"column:size_id;primaryKey;autoIncrement"`
	UKSize    decimal.Decimal `gorm:"column:uk_size;type:numeric(4,1);not null"`
	IndiaSize decimal.Decimal `gorm:"column:india_size;type:numeric(4,1);not null"`
	WidthType string          `gorm:"column:width_type"`
	Gender    string          `gorm:"column:gender"`
}

// TableName pins the table to match the migrated schema.
func (Size) TableName() string { return "sizes" }
