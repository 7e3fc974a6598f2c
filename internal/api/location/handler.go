package location

import (
	"context"
	"net/http"

	"binstock/internal/api/response"
	"binstock/internal/domain"
	"binstock/internal/pkg/logger"
)

// LocationService define o contrato que o Handler espera da camada de Serviço.
type LocationService interface {
	CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (domain.Location, error)
	GetLocation(ctx context.Context, code string) (domain.Location, error)
	ResolveWarehouse(ctx context.Context, code string) (domain.WarehouseResolution, error)
}

// Handler agrupa os endpoints de localização.
type Handler struct {
	Service LocationService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc LocationService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateLocationHandler godoc
// @Summary      Create a warehouse or storage location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateLocationRequest  true  "Location"
// @Success      200   {object}  domain.APIResponse{data=domain.Location}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      409   {object}  domain.ErrorResponse
// @Failure      500   {object}  domain.ErrorResponse
// @Router       /api/create_location [post]
func (h *Handler) CreateLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLocationRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	loc, err := h.Service.CreateLocation(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusOK, "Location created successfully", loc)
}

// GetLocationHandler godoc
// @Summary      Get a location by code
// @Tags         locations
// @Produce      json
// @Param        code  path      string  true  "Location code"
// @Success      200   {object}  domain.APIResponse{data=domain.Location}
// @Failure      404   {object}  domain.ErrorResponse
// @Router       /api/locations/{code} [get]
func (h *Handler) GetLocationHandler(w http.ResponseWriter, r *http.Request) {
	loc, err := h.Service.GetLocation(r.Context(), r.PathValue("code"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusOK, "Location found", loc)
}

// ResolveWarehouseHandler godoc
// @Summary      Resolve the warehouse a location belongs to
// @Tags         locations
// @Produce      json
// @Param        code  path      string  true  "Location code"
// @Success      200   {object}  domain.APIResponse{data=domain.WarehouseResolution}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      404   {object}  domain.ErrorResponse
// @Router       /api/locations/{code}/warehouse [get]
func (h *Handler) ResolveWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ResolveWarehouse(r.Context(), r.PathValue("code"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusOK, "Warehouse resolved", res)
}
