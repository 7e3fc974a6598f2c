package product

import (
	"context"
	"net/http"

	"binstock/internal/api/response"
	"binstock/internal/domain"
	"binstock/internal/pkg/logger"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error)
	GetProduct(ctx context.Context, code string) (domain.Product, error)
}

// Handler agrupa todos os métodos de Handler de produto.
type Handler struct {
	Service ProductService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateProductHandler godoc
// @Summary      Register a product with zero stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateProductRequest  true  "Product"
// @Success      201   {object}  domain.APIResponse{data=domain.Product}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      409   {object}  domain.ErrorResponse
// @Router       /api/products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	p, err := h.Service.CreateProduct(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusCreated, "Product created successfully", p)
}

// GetProductHandler godoc
// @Summary      Get a product stock record
// @Tags         products
// @Produce      json
// @Param        code  path      string  true  "Product code"
// @Success      200   {object}  domain.APIResponse{data=domain.Product}
// @Failure      404   {object}  domain.ErrorResponse
// @Router       /api/products/{code} [get]
func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetProduct(r.Context(), r.PathValue("code"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusOK, "Product found", p)
}
