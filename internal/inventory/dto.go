package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// SizeInput carries the sizing descriptor for create/update payloads.
type SizeInput struct {
	UKSize    decimal.Decimal
	IndiaSize decimal.Decimal
	WidthType string
	Gender    string
}

// CreateProductInput holds the validated payload to create a product with its
// size, inventory row, and opening stock entry.
type CreateProductInput struct {
	BrandName     string
	ModelName     string
	StyleCode     string
	Category      string
	Color         string
	Gender        string
	RetailPrice   decimal.Decimal
	Size          SizeInput
	Quantity      int
	MinStockLevel *int
}

// UpdateProductInput holds the full replacement payload for a product update.
type UpdateProductInput struct {
	BrandName   string
	ModelName   string
	StyleCode   string
	Category    string
	Color       string
	Gender      string
	RetailPrice decimal.Decimal
	Size        SizeInput
	Quantity    int
}

// SizeView is the nested sizing block of a FullProductView.
type SizeView struct {
	UKSize    decimal.Decimal `json:"uk_size"`
	IndiaSize decimal.Decimal `json:"india_size"`
	WidthType string          `json:"width_type"`
	Gender    string          `json:"gender"`
}

// FullProductView is the joined product+size+inventory representation returned
// by every read path. It is always rebuilt from persisted rows, never echoed
// from request input.
type FullProductView struct {
	ProductID     int64           `json:"product_id"`
	BrandName     string          `json:"brand_name"`
	ModelName     string          `json:"model_name"`
	StyleCode     string          `json:"style_code"`
	Category      string          `json:"category"`
	Color         string          `json:"color"`
	Gender        string          `json:"gender"`
	RetailPrice   decimal.Decimal `json:"retail_price"`
	CreatedAt     time.Time       `json:"created_at"`
	Quantity      int             `json:"quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	LastUpdated   time.Time       `json:"last_updated"`
	Size          SizeView        `json:"size"`
}

// ProductListResult is one page of joined rows plus the filter-wide total.
type ProductListResult struct {
	Items []FullProductView `json:"items"`
	Total int64             `json:"total"`
}

// ListInput captures the inputs for the paginated product listing.
type ListInput struct {
	Page   int
	Limit  int
	Search string
}

// newFullProductView maps a joined row onto the client-facing view.
func newFullProductView(row *joinedProductRow) *FullProductView {
	return &FullProductView{
		ProductID:     row.ProductID,
		BrandName:     row.BrandName,
		ModelName:     row.ModelName,
		StyleCode:     row.StyleCode,
		Category:      row.Category,
		Color:         row.Color,
		Gender:        row.Gender,
		RetailPrice:   row.RetailPrice,
		CreatedAt:     row.CreatedAt,
		Quantity:      row.Quantity,
		MinStockLevel: row.MinStockLevel,
		LastUpdated:   row.LastUpdated,
		Size: SizeView{
			UKSize:    row.UKSize,
			IndiaSize: row.IndiaSize,
			WidthType: row.WidthType,
			Gender:    row.SizeGender,
		},
	}
}
