package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "binstock/docs" // registra o swagger.json gerado
	"binstock/internal/api/health"
	"binstock/internal/api/location"
	"binstock/internal/api/product"
	"binstock/internal/api/receipt"
	"binstock/internal/pkg/logger"
	"binstock/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Health   *health.Handler
	Location *location.Handler
	Receipt  *receipt.Handler
	Product  *product.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// limiter é opcional (nil quando o Redis não está disponível).
func NewRouter(h Handlers, log logger.Logger, limiter func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check ---
	mux.HandleFunc("GET /{$}", h.Health.RootHandler)
	mux.HandleFunc("GET /ping", h.Health.PingHandler)

	// --- 2. Localizações ---
	mux.HandleFunc("POST /api/create_location", h.Location.CreateLocationHandler)
	mux.HandleFunc("GET /api/locations/{code}", h.Location.GetLocationHandler)
	mux.HandleFunc("GET /api/locations/{code}/warehouse", h.Location.ResolveWarehouseHandler)

	// --- 3. Transações ---
	mux.HandleFunc("POST /api/transaction/receipt", h.Receipt.ReceiptHandler)

	// --- 4. Produtos ---
	mux.HandleFunc("POST /api/products", h.Product.CreateProductHandler)
	mux.HandleFunc("GET /api/products/{code}", h.Product.GetProductHandler)

	// --- 5. Documentação ---
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mws := []func(http.Handler) http.Handler{
		middleware.Recoverer(log),
		middleware.RequestLogger(log),
		middleware.CORS,
	}
	if limiter != nil {
		mws = append(mws, limiter)
	}
	return middleware.Chain(mux, mws...)
}
