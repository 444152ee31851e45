package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/solestock/solestock-backend/api/responses"
	"github.com/solestock/solestock-backend/api/validators"
	"github.com/solestock/solestock-backend/internal/inventory"
	pkgerrors "github.com/solestock/solestock-backend/pkg/errors"
	"github.com/solestock/solestock-backend/pkg/logger"
	"github.com/solestock/solestock-backend/pkg/pagination"
)

// ListProducts serves the paginated joined product listing.
func ListProducts(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), inventory.ListInput{
			Page:   page,
			Limit:  limit,
			Search: validators.ParseQueryString(r, "search"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CreateProduct handles product creation with its size and opening stock.
func CreateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateProduct handles the full-replacement product update.
func UpdateProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		product, err := svc.Update(ctx, productID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct removes a product together with its inventory and audit rows.
func DeleteProduct(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		if err := svc.Delete(ctx, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Product deleted successfully"})
	}
}

func parseProductID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "productId"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").WithDetails(map[string]any{"field": "productId"})
	}
	return id, nil
}

type sizeRequest struct {
	UKSize    decimal.Decimal `json:"uk_size" validate:"required"`
	IndiaSize decimal.Decimal `json:"india_size" validate:"required"`
	WidthType string          `json:"width_type" validate:"required"`
	Gender    string          `json:"gender" validate:"required"`
}

type createProductRequest struct {
	BrandName     string          `json:"brand_name" validate:"required"`
	ModelName     string          `json:"model_name" validate:"required"`
	StyleCode     string          `json:"style_code" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	Color         string          `json:"color" validate:"required"`
	Gender        string          `json:"gender" validate:"required"`
	RetailPrice   decimal.Decimal `json:"retail_price" validate:"required"`
	Size          sizeRequest     `json:"size" validate:"required"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	MinStockLevel *int            `json:"min_stock_level,omitempty" validate:"omitempty,min=0"`
}

type updateProductRequest struct {
	BrandName   string          `json:"brand_name" validate:"required"`
	ModelName   string          `json:"model_name" validate:"required"`
	StyleCode   string          `json:"style_code" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Color       string          `json:"color" validate:"required"`
	Gender      string          `json:"gender" validate:"required"`
	RetailPrice decimal.Decimal `json:"retail_price" validate:"required"`
	Size        sizeRequest     `json:"size" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
}

func (r createProductRequest) toCreateInput() (inventory.CreateProductInput, error) {
	if r.RetailPrice.IsNegative() {
		return inventory.CreateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "retail_price cannot be negative")
	}
	size, err := r.Size.toInput()
	if err != nil {
		return inventory.CreateProductInput{}, err
	}
	return inventory.CreateProductInput{
		BrandName:     strings.TrimSpace(r.BrandName),
		ModelName:     strings.TrimSpace(r.ModelName),
		StyleCode:     strings.TrimSpace(r.StyleCode),
		Category:      strings.TrimSpace(r.Category),
		Color:         strings.TrimSpace(r.Color),
		Gender:        strings.TrimSpace(r.Gender),
		RetailPrice:   r.RetailPrice,
		Size:          size,
		Quantity:      r.Quantity,
		MinStockLevel: r.MinStockLevel,
	}, nil
}

func (r updateProductRequest) toUpdateInput() (inventory.UpdateProductInput, error) {
	if r.RetailPrice.IsNegative() {
		return inventory.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "retail_price cannot be negative")
	}
	size, err := r.Size.toInput()
	if err != nil {
		return inventory.UpdateProductInput{}, err
	}
	return inventory.UpdateProductInput{
		BrandName:   strings.TrimSpace(r.BrandName),
		ModelName:   strings.TrimSpace(r.ModelName),
		StyleCode:   strings.TrimSpace(r.StyleCode),
		Category:    strings.TrimSpace(r.Category),
		Color:       strings.TrimSpace(r.Color),
		Gender:      strings.TrimSpace(r.Gender),
		RetailPrice: r.RetailPrice,
		Size:        size,
		Quantity:    r.Quantity,
	}, nil
}

func (s sizeRequest) toInput() (inventory.SizeInput, error) {
	if s.UKSize.IsNegative() || s.IndiaSize.IsNegative() {
		return inventory.SizeInput{}, pkgerrors.New(pkgerrors.CodeValidation, "size values cannot be negative")
	}
	return inventory.SizeInput{
		UKSize:    s.UKSize,
		IndiaSize: s.IndiaSize,
		WidthType: strings.TrimSpace(s.WidthType),
		Gender:    strings.TrimSpace(s.Gender),
	}, nil
}
