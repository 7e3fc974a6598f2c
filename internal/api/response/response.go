// Package response escreve os envelopes JSON usados por todos os handlers.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/logger"
)

// maxBodyBytes limita o tamanho dos payloads aceitos.
const maxBodyBytes = 1 << 20

func init() {
	// Volumes saem como número no JSON, não como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// JSON serializa v com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Success envia {success:true, message, data}.
func Success(w http.ResponseWriter, log logger.Logger, status int, message string, data interface{}) {
	JSON(w, log, status, domain.APIResponse{Success: true, Message: message, Data: data})
}

// Error traduz o erro via MapToHTTPStatus e envia {success:false, code, category, message}.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Success:  false,
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Decode lê o corpo JSON da requisição em dst. Corpo inválido vira ValidationError.
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("invalid JSON payload")
	}
	return nil
}
