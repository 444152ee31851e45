package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solestock/solestock-backend/pkg/db/models"
	"github.com/solestock/solestock-backend/pkg/pagination"
	"gorm.io/gorm"
)

// joinedProductRow is the flat scan target for the product+size+inventory join.
type joinedProductRow struct {
	ProductID     int64
	BrandName     string
	ModelName     string
	StyleCode     string
	Category      string
	Color         string
	Gender        string
	RetailPrice   decimal.Decimal
	CreatedAt     time.Time
	Quantity      int
	MinStockLevel int
	LastUpdated   time.Time
	UKSize        decimal.Decimal
	IndiaSize     decimal.Decimal
	WidthType     string
	SizeGender    string `gorm:"column:size_gender"`
}

const joinedProductSelect = `
SELECT p.product_id,
       p.brand_name,
       p.model_name,
       p.style_code,
       p.category,
       p.color,
       p.gender,
       p.retail_price,
       p.created_at,
       i.quantity,
       i.min_stock_level,
       i.last_updated,
       s.uk_size,
       s.india_size,
       s.width_type,
       s.gender AS size_gender
FROM products p
LEFT JOIN inventory i ON i.product_id = p.product_id
LEFT JOIN sizes s ON s.size_id = i.size_id
`

// Lower-cased LIKE keeps the substring match case-insensitive on both Postgres
// and SQLite.
const searchClause = `(LOWER(p.brand_name) LIKE LOWER(?)
  OR LOWER(p.model_name) LIKE LOWER(?)
  OR LOWER(p.style_code) LIKE LOWER(?)
  OR LOWER(p.category) LIKE LOWER(?))`

// Repository wires together persistence for the product/size/inventory tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateProduct inserts a new product row, filling in its generated identity.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// CreateSize inserts a new size row, filling in its generated identity.
func (r *Repository) CreateSize(ctx context.Context, size *models.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

// CreateInventory inserts a new inventory row, filling in its generated identity.
func (r *Repository) CreateInventory(ctx context.Context, item *models.Inventory) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateTransaction appends an audit row to the inventory transaction log.
func (r *Repository) CreateTransaction(ctx context.Context, txn *models.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// GetInventoryByProductID returns the inventory row for the provided product.
func (r *Repository) GetInventoryByProductID(ctx context.Context, productID int64) (*models.Inventory, error) {
	var item models.Inventory
	if err := r.db.WithContext(ctx).First(&item, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateProductAttrs replaces the product's descriptive attributes and
// refreshes its timestamp.
func (r *Repository) UpdateProductAttrs(ctx context.Context, productID int64, input UpdateProductInput) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"brand_name":   input.BrandName,
			"model_name":   input.ModelName,
			"style_code":   input.StyleCode,
			"category":     input.Category,
			"color":        input.Color,
			"gender":       input.Gender,
			"retail_price": input.RetailPrice,
			"created_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

// UpdateSize replaces the size row's attributes.
func (r *Repository) UpdateSize(ctx context.Context, sizeID int64, input SizeInput) error {
	return r.db.WithContext(ctx).
		Model(&models.Size{}).
		Where("size_id = ?", sizeID).
		Updates(map[string]any{
			"uk_size":    input.UKSize,
			"india_size": input.IndiaSize,
			"width_type": input.WidthType,
			"gender":     input.Gender,
		}).Error
}

// UpdateInventoryQuantity sets the stored quantity and refreshes last_updated.
func (r *Repository) UpdateInventoryQuantity(ctx context.Context, inventoryID int64, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.Inventory{}).
		Where("inventory_id = ?", inventoryID).
		Updates(map[string]any{
			"quantity":     quantity,
			"last_updated": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

// DeleteTransactionsByInventoryID removes all audit rows for an inventory record.
func (r *Repository) DeleteTransactionsByInventoryID(ctx context.Context, inventoryID int64) error {
	return r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Delete(&models.InventoryTransaction{}).Error
}

// DeleteInventoryByProductID removes the inventory row for a product.
func (r *Repository) DeleteInventoryByProductID(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.Inventory{}).Error
}

// DeleteProduct removes a product by identity.
func (r *Repository) DeleteProduct(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&models.Product{}).Error
}

// GetFullProduct re-reads the joined product+size+inventory row.
func (r *Repository) GetFullProduct(ctx context.Context, productID int64) (*FullProductView, error) {
	var row joinedProductRow
	result := r.db.WithContext(ctx).
		Raw(joinedProductSelect+"WHERE p.product_id = ?", productID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return newFullProductView(&row), nil
}

// ListFullProducts returns one page of joined rows plus the filter-wide total.
// The page and count run as two independent reads.
func (r *Repository) ListFullProducts(ctx context.Context, input ListInput) ([]FullProductView, int64, error) {
	params := pagination.Params{Page: input.Page, Limit: input.Limit}.Normalize()

	pageQuery := joinedProductSelect
	countQuery := "SELECT COUNT(*) FROM products p"
	var pageArgs, countArgs []any

	if input.Search != "" {
		pattern := "%" + input.Search + "%"
		pageQuery += "WHERE " + searchClause + "\n"
		countQuery += " WHERE " + searchClause
		for i := 0; i < 4; i++ {
			pageArgs = append(pageArgs, pattern)
			countArgs = append(countArgs, pattern)
		}
	}

	pageQuery += "ORDER BY p.product_id ASC LIMIT ? OFFSET ?"
	pageArgs = append(pageArgs, params.Limit, params.Offset())

	var rows []joinedProductRow
	if err := r.db.WithContext(ctx).Raw(pageQuery, pageArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Raw(countQuery, countArgs...).Scan(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]FullProductView, 0, len(rows))
	for i := range rows {
		items = append(items, *newFullProductView(&rows[i]))
	}
	return items, total, nil
}
