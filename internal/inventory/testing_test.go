package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/solestock/solestock-backend/pkg/config"
	"github.com/solestock/solestock-backend/pkg/db"
	"github.com/solestock/solestock-backend/pkg/db/models"
	"github.com/stretchr/testify/require"
)

// newTestClient opens an isolated in-memory SQLite database migrated with the
// inventory schema. Each test gets its own database name so state never leaks
// across tests.
func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	err = client.DB().AutoMigrate(
		&models.Product{},
		&models.Size{},
		&models.Inventory{},
		&models.InventoryTransaction{},
	)
	require.NoError(t, err)

	return client
}

func newTestService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(NewRepository(client.DB()), client, nil, nil)
	require.NoError(t, err)
	return svc
}

func sampleCreateInput(styleCode string) CreateProductInput {
	return CreateProductInput{
		BrandName:   "Nike",
		ModelName:   "Air Jordan 1",
		StyleCode:   styleCode,
		Category:    "Basketball",
		Color:       "Chicago",
		Gender:      "MENS",
		RetailPrice: decimal.NewFromFloat(170.00),
		Size: SizeInput{
			UKSize:    decimal.NewFromFloat(9.0),
			IndiaSize: decimal.NewFromFloat(9.5),
			WidthType: "REGULAR",
			Gender:    "MENS",
		},
		Quantity: 10,
	}
}

func updateInputFrom(create CreateProductInput, quantity int) UpdateProductInput {
	return UpdateProductInput{
		BrandName:   create.BrandName,
		ModelName:   create.ModelName,
		StyleCode:   create.StyleCode,
		Category:    create.Category,
		Color:       create.Color,
		Gender:      create.Gender,
		RetailPrice: create.RetailPrice,
		Size:        create.Size,
		Quantity:    quantity,
	}
}

func countRows(t *testing.T, client *db.Client, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, client.DB().Model(model).Count(&n).Error)
	return n
}
