package models

import (
	"time"

	"github.com/solestock/solestock-backend/pkg/enums"
)

// InventoryTransaction is an append-only audit row for a stock change. The
// quantity column holds the unsigned magnitude; the type carries the sign.
type InventoryTransaction struct {
	ID              int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	InventoryID     int64                 `gorm:"column:inventory_id;not null"`
	TransactionType enums.TransactionType `gorm:"column:transaction_type;not null"`
	Quantity        int                   `gorm:"column:quantity;not null"`
	Notes           *string               `gorm:"column:notes"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table to match the migrated schema.
func (InventoryTransaction) TableName() string { return "inventory_transactions" }
