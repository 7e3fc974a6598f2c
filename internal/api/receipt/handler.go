package receipt

import (
	"context"
	"net/http"

	"binstock/internal/api/response"
	"binstock/internal/domain"
	"binstock/internal/pkg/logger"
)

// ReceiptService define o contrato que o Handler espera da camada de Serviço.
type ReceiptService interface {
	ProcessReceipt(ctx context.Context, req domain.ReceiptRequest) (domain.StockTransaction, error)
}

// Handler recebe as transações de entrada de estoque.
type Handler struct {
	Service ReceiptService
	Logger  logger.Logger
}

func NewHandler(svc ReceiptService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ReceiptHandler godoc
// @Summary      Register a stock receipt
// @Description  Every line must sit in a location under the declared warehouse; otherwise nothing is written.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ReceiptRequest  true  "Receipt"
// @Success      200   {object}  domain.APIResponse{data=domain.StockTransaction}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      404   {object}  domain.ErrorResponse
// @Failure      500   {object}  domain.ErrorResponse
// @Router       /api/transaction/receipt [post]
func (h *Handler) ReceiptHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.ReceiptRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	stx, err := h.Service.ProcessReceipt(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	response.Success(w, h.Logger, http.StatusOK, "Receipt processed successfully", stx)
}
