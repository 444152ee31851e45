package models

import "time"

// Inventory is the mutable stock record for a (product, size) pair.
type Inventory struct {
	InventoryID   int64     `gorm:"column:inventory_id;primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"column:product_id;not null"`
	SizeID        int64     `gorm:"column:size_id;not null"`
	Quantity      int       `gorm:"column:quantity;not null;default:0"`
	MinStockLevel int       `gorm:"column:min_stock_level;not null;default:5"`
	LastUpdated   time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

// TableName pins the table to match the migrated schema; GORM would otherwise
// pluralize to "inventories".
func (Inventory) TableName() string { return "inventory" }
