package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binstock/internal/api/health"
	"binstock/internal/api/location"
	"binstock/internal/api/product"
	"binstock/internal/api/receipt"
	"binstock/internal/api/router"
	"binstock/internal/memstore"
	"binstock/internal/pkg/logger"
	"binstock/internal/service/locationservice"
	"binstock/internal/service/productservice"
	"binstock/internal/service/receiptservice"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	locations := memstore.NewLocationStore()
	products := memstore.NewProductStore()

	handlers := router.Handlers{
		Health:   health.NewHandler(log),
		Location: location.NewHandler(locationservice.NewService(locations, log), log),
		Receipt:  receipt.NewHandler(receiptservice.NewService(locations, products, products, log), log),
		Product:  product.NewHandler(productservice.NewService(products, locations, log), log),
	}
	srv := httptest.NewServer(router.NewRouter(handlers, log, nil))
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message"`
	Category string                 `json:"category"`
	Code     int                    `json:"code"`
	Data     map[string]interface{} `json:"data"`
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRoot_Welcome(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Welcome", body["message"])
	assert.Equal(t, "Server is running successfully", body["status"])
	_, err = time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestReceiptScenario(t *testing.T) {
	srv := newServer(t)

	status, env := call(t, srv, http.MethodPost, "/api/create_location", `{"location_code":"WH1"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "WH1", env.Data["location_code"])
	assert.Nil(t, env.Data["parent_location_code"])
	assert.Equal(t, "warehouse", env.Data["type"])

	status, env = call(t, srv, http.MethodPost, "/api/create_location", `{"location_code":"BIN1","parent_location_code":"WH1"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "WH1", env.Data["parent_location_code"])
	assert.Equal(t, "storage", env.Data["type"])

	status, _ = call(t, srv, http.MethodPost, "/api/products", `{"product_code":"P1"}`)
	require.Equal(t, http.StatusCreated, status)

	status, env = call(t, srv, http.MethodPost, "/api/transaction/receipt",
		`{"transaction_date":"2024-05-01","warehouse_code":"WH1","products":[{"product_code":"P1","qty":5,"volume":1.2,"location_code":"BIN1"}]}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data["transaction_id"])
	lines, ok := env.Data["lines"].([]interface{})
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, 1.2, lines[0].(map[string]interface{})["volume"])

	status, env = call(t, srv, http.MethodGet, "/api/products/P1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(5), env.Data["quantity"])
	assert.Equal(t, "BIN1", env.Data["location_code"])
	assert.Equal(t, 1.2, env.Data["volume"])

	status, env = call(t, srv, http.MethodGet, "/api/locations/bin1/warehouse", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "WH1", env.Data["warehouse_code"])
}

func TestReceipt_MismatchLeavesStockUntouched(t *testing.T) {
	srv := newServer(t)
	for _, body := range []string{
		`{"location_code":"WH1"}`,
		`{"location_code":"WH2"}`,
		`{"location_code":"BIN1","parent_location_code":"WH1"}`,
		`{"location_code":"BIN2","parent_location_code":"WH2"}`,
	} {
		status, _ := call(t, srv, http.MethodPost, "/api/create_location", body)
		require.Equal(t, http.StatusOK, status)
	}
	status, _ := call(t, srv, http.MethodPost, "/api/products", `{"product_code":"P1"}`)
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, srv, http.MethodPost, "/api/transaction/receipt",
		`{"warehouse_code":"WH1","products":[{"product_code":"P1","qty":5,"volume":1,"location_code":"BIN1"},{"product_code":"P1","qty":3,"volume":1,"location_code":"BIN2"}]}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "HIERARCHY_MISMATCH", env.Category)
	assert.Equal(t, "location BIN2 belongs to warehouse WH2, not WH1", env.Message)

	_, env = call(t, srv, http.MethodGet, "/api/products/P1", "")
	assert.Equal(t, float64(0), env.Data["quantity"])
}

func TestErrorResponses(t *testing.T) {
	srv := newServer(t)
	status, _ := call(t, srv, http.MethodPost, "/api/create_location", `{"location_code":"WH1"}`)
	require.Equal(t, http.StatusOK, status)

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		category string
		message  string
	}{
		{"json inválido", http.MethodPost, "/api/create_location", `{`, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON payload"},
		{"código ausente", http.MethodPost, "/api/create_location", `{}`, http.StatusBadRequest, "VALIDATION_ERROR", "location_code is required"},
		{"duplicado", http.MethodPost, "/api/create_location", `{"location_code":"WH1"}`, http.StatusConflict, "CONFLICT", "location WH1 already exists"},
		{"bin sem pai", http.MethodPost, "/api/create_location", `{"location_code":"BIN1"}`, http.StatusBadRequest, "INVALID_HIERARCHY", "warehouse creation failed"},
		{"pai inexistente", http.MethodPost, "/api/create_location", `{"location_code":"BIN1","parent_location_code":"NOPE"}`, http.StatusBadRequest, "INVALID_HIERARCHY", "parent does not exist"},
		{"armazém inexistente", http.MethodPost, "/api/transaction/receipt", `{"warehouse_code":"WH9","products":[{"product_code":"P1","qty":1,"location_code":"BIN1"}]}`, http.StatusNotFound, "NOT_FOUND", "warehouse WH9 not found"},
		{"localização inexistente", http.MethodGet, "/api/locations/NOPE", "", http.StatusNotFound, "NOT_FOUND", "location NOPE not found"},
		{"produto inexistente", http.MethodGet, "/api/products/NOPE", "", http.StatusNotFound, "NOT_FOUND", "product NOPE not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, srv, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.status, status)
			assert.False(t, env.Success)
			assert.Equal(t, tt.status, env.Code)
			assert.Equal(t, tt.category, env.Category)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}
