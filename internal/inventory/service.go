package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/solestock/solestock-backend/pkg/db"
	"github.com/solestock/solestock-backend/pkg/db/models"
	"github.com/solestock/solestock-backend/pkg/enums"
	pkgerrors "github.com/solestock/solestock-backend/pkg/errors"
	"github.com/solestock/solestock-backend/pkg/metrics"
	"gorm.io/gorm"
)

// defaultMinStockLevel applies when a create payload omits min_stock_level.
const defaultMinStockLevel = 5

const (
	initialStockNotes = "Initial stock entry"
	stockUpdateNotes  = "Stock update via product modification"
)

// Service is the inventory write coordinator: every mutation touches the
// products, sizes, inventory, and inventory_transactions tables as one atomic
// unit, keeping Inventory.quantity equal to the signed sum of its audit rows.
type Service interface {
	Create(ctx context.Context, input CreateProductInput) (*FullProductView, error)
	Update(ctx context.Context, productID int64, input UpdateProductInput) (*FullProductView, error)
	Delete(ctx context.Context, productID int64) error
	List(ctx context.Context, input ListInput) (*ProductListResult, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	cache    *ListCache
	metrics  *metrics.InventoryMetrics
}

// NewService constructs the coordinator. Cache and metrics are optional.
func NewService(repo *Repository, dbClient *db.Client, cache *ListCache, m *metrics.InventoryMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		cache:    cache,
		metrics:  m,
	}, nil
}

// Create inserts the product, its size descriptor, its inventory row, and the
// opening INITIAL_STOCK audit row in one transaction, then re-reads the joined
// record so the response reflects exactly what was persisted.
func (s *service) Create(ctx context.Context, input CreateProductInput) (*FullProductView, error) {
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	minStock := defaultMinStockLevel
	if input.MinStockLevel != nil {
		if *input.MinStockLevel < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "min_stock_level cannot be negative")
		}
		minStock = *input.MinStockLevel
	}

	start := time.Now()
	var productID int64
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		product := &models.Product{
			BrandName:   input.BrandName,
			ModelName:   input.ModelName,
			StyleCode:   input.StyleCode,
			Category:    input.Category,
			Color:       input.Color,
			Gender:      input.Gender,
			RetailPrice: input.RetailPrice,
		}
		if err := txRepo.CreateProduct(ctx, product); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "style_code already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
		}

		size := &models.Size{
			UKSize:    input.Size.UKSize,
			IndiaSize: input.Size.IndiaSize,
			WidthType: input.Size.WidthType,
			Gender:    input.Size.Gender,
		}
		if err := txRepo.CreateSize(ctx, size); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert size")
		}

		item := &models.Inventory{
			ProductID:     product.ProductID,
			SizeID:        size.SizeID,
			Quantity:      input.Quantity,
			MinStockLevel: minStock,
		}
		if err := txRepo.CreateInventory(ctx, item); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert inventory")
		}

		notes := initialStockNotes
		txn := &models.InventoryTransaction{
			InventoryID:     item.InventoryID,
			TransactionType: enums.TransactionTypeInitialStock,
			Quantity:        input.Quantity,
			Notes:           &notes,
		}
		if err := txRepo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert inventory transaction")
		}

		productID = product.ProductID
		return nil
	})
	if err != nil {
		s.metrics.IncWriteFailure("create")
		return nil, err
	}

	s.metrics.ObserveWrite("create", time.Since(start))
	s.metrics.IncTransaction(enums.TransactionTypeInitialStock.String())
	s.invalidateListCache(ctx)

	return s.readFullProduct(ctx, productID)
}

// Update applies the full replacement payload across products, sizes, and
// inventory in one transaction, appending exactly one audit row when the
// quantity changed and none otherwise.
//
// The current quantity is read inside the same transaction as the writes, so
// the delta never reflects rows older than the transaction snapshot. Two
// concurrent updates to the same product can still interleave their
// read-then-write sequences under read-committed isolation; that race is
// inherited from the storage engine's default isolation level.
func (s *service) Update(ctx context.Context, productID int64, input UpdateProductInput) (*FullProductView, error) {
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	start := time.Now()
	var recordedType enums.TransactionType
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		// Existence check first: without an inventory row there is no size or
		// quantity to update, so fail before touching any table.
		item, err := txRepo.GetInventoryByProductID(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "no inventory record for product")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: read inventory")
		}

		if err := txRepo.UpdateProductAttrs(ctx, productID, input); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "style_code already exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
		}

		if err := txRepo.UpdateSize(ctx, item.SizeID, input.Size); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update size")
		}

		delta := input.Quantity - item.Quantity

		if err := txRepo.UpdateInventoryQuantity(ctx, item.InventoryID, input.Quantity); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update inventory")
		}

		if delta != 0 {
			transactionType := enums.TransactionTypeStockAddition
			magnitude := delta
			if delta < 0 {
				transactionType = enums.TransactionTypeStockReduction
				magnitude = -delta
			}
			notes := stockUpdateNotes
			txn := &models.InventoryTransaction{
				InventoryID:     item.InventoryID,
				TransactionType: transactionType,
				Quantity:        magnitude,
				Notes:           &notes,
			}
			if err := txRepo.CreateTransaction(ctx, txn); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert inventory transaction")
			}
			recordedType = transactionType
		}

		return nil
	})
	if err != nil {
		s.metrics.IncWriteFailure("update")
		return nil, err
	}

	s.metrics.ObserveWrite("update", time.Since(start))
	if recordedType != "" {
		s.metrics.IncTransaction(recordedType.String())
	}
	s.invalidateListCache(ctx)

	return s.readFullProduct(ctx, productID)
}

// Delete removes the product's transaction log, inventory row, and product row
// in one transaction. A missing inventory row or unknown product identity is
// not an error. Size rows are kept: descriptors are treated as a reusable
// taxonomy rather than owned children.
func (s *service) Delete(ctx context.Context, productID int64) error {
	start := time.Now()
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		item, err := txRepo.GetInventoryByProductID(ctx, productID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: read inventory")
		}

		if item != nil {
			if err := txRepo.DeleteTransactionsByInventoryID(ctx, item.InventoryID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete inventory transactions")
			}
			if err := txRepo.DeleteInventoryByProductID(ctx, productID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete inventory")
			}
		}

		if err := txRepo.DeleteProduct(ctx, productID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
		}
		return nil
	})
	if err != nil {
		s.metrics.IncWriteFailure("delete")
		return err
	}

	s.metrics.ObserveWrite("delete", time.Since(start))
	s.invalidateListCache(ctx)
	return nil
}

// List serves one page of joined rows, consulting the cache first when one is
// configured. The page and total come from two independent reads; a write
// landing between them can skew the total by one, which callers tolerate.
func (s *service) List(ctx context.Context, input ListInput) (*ProductListResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, input); ok {
			return cached, nil
		}
	}

	items, total, err := s.repo.ListFullProducts(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	result := &ProductListResult{Items: items, Total: total}
	if s.cache != nil {
		s.cache.Put(ctx, input, result)
	}
	return result, nil
}

func (s *service) readFullProduct(ctx context.Context, productID int64) (*FullProductView, error) {
	view, err := s.repo.GetFullProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: read product")
	}
	return view, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
