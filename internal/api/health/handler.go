package health

import (
	"net/http"
	"time"

	"binstock/internal/api/response"
	"binstock/internal/domain"
	"binstock/internal/pkg/logger"
)

// Handler responde às sondas de liveness.
type Handler struct {
	Logger logger.Logger
	now    func() time.Time
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{Logger: log, now: time.Now}
}

// RootHandler godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthResponse
// @Router       / [get]
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.Logger, http.StatusOK, domain.HealthResponse{
		Message:   "Welcome",
		Status:    "Server is running successfully",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// PingHandler responde "pong" em texto puro.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
