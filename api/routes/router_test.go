package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/solestock/solestock-backend/internal/inventory"
	"github.com/solestock/solestock-backend/pkg/config"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubInventoryService struct{}

func (stubInventoryService) Create(context.Context, inventory.CreateProductInput) (*inventory.FullProductView, error) {
	return &inventory.FullProductView{}, nil
}

func (stubInventoryService) Update(context.Context, int64, inventory.UpdateProductInput) (*inventory.FullProductView, error) {
	return &inventory.FullProductView{}, nil
}

func (stubInventoryService) Delete(context.Context, int64) error { return nil }

func (stubInventoryService) List(context.Context, inventory.ListInput) (*inventory.ProductListResult, error) {
	return &inventory.ProductListResult{}, nil
}

func newTestRouter(t *testing.T, dbErr error) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	return NewRouter(cfg, nil, stubPinger{err: dbErr}, nil, stubInventoryService{}, prometheus.NewRegistry())
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "live")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ready")
}

func TestRouterReadyFailsWhenDatabaseDown(t *testing.T) {
	router := newTestRouter(t, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "database")
}

func TestRouterProductRoutesAreMounted(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/products", http.StatusOK},
		{http.MethodDelete, "/api/v1/products/3", http.StatusOK},
		{http.MethodGet, "/api/v1/missing", http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equalf(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterServesMetrics(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterSetsRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
