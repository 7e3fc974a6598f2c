package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do serviço.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada (inclui campo obrigatório ausente).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewQuantityOverflowError é usado quando um recebimento levaria a quantidade além do limite.
func NewQuantityOverflowError(productCode string) AppError {
	return &ValidationError{Msg: fmt.Sprintf("quantity of product %s would exceed the maximum allowed", productCode)}
}

// NewMissingFieldError cria o erro de campo obrigatório ausente.
func NewMissingFieldError(field string) AppError {
	return &ValidationError{Msg: fmt.Sprintf("%s is required", field)}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// NewWarehouseNotFoundError é usado quando o armazém de um recebimento não existe.
func NewWarehouseNotFoundError(code string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("warehouse %s not found", code)}
}

// NewProductNotFoundError é usado quando uma linha referencia um produto inexistente.
func NewProductNotFoundError(code string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("product %s not found", code)}
}

// ConflictError representa um conflito na regra de negócio (e.g., código duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// InvalidHierarchyError é a rejeição do validador de hierarquia; Reason é legível por humanos.
type InvalidHierarchyError struct {
	Reason string
}

func (e *InvalidHierarchyError) Error() string    { return e.Reason }
func (e *InvalidHierarchyError) Category() string { return "INVALID_HIERARCHY" }
func (e *InvalidHierarchyError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *InvalidHierarchyError) Unwrap() error    { return nil }

// NewInvalidHierarchyError cria o erro com o motivo devolvido pelo validador.
func NewInvalidHierarchyError(reason string) AppError {
	return &InvalidHierarchyError{Reason: reason}
}

// HierarchyMismatchError indica que a localização de uma linha não pertence ao armazém declarado.
// Resolved vazio significa que a localização não resolve para nenhum armazém;
// Expected vazio é usado na consulta avulsa, sem armazém declarado.
type HierarchyMismatchError struct {
	LocationCode string
	Expected     string
	Resolved     string
}

func (e *HierarchyMismatchError) Error() string {
	if e.Resolved == "" && e.Expected == "" {
		return fmt.Sprintf("location %s does not belong to any warehouse", e.LocationCode)
	}
	if e.Resolved == "" {
		return fmt.Sprintf("location %s does not belong to any warehouse (expected %s)", e.LocationCode, e.Expected)
	}
	return fmt.Sprintf("location %s belongs to warehouse %s, not %s", e.LocationCode, e.Resolved, e.Expected)
}
func (e *HierarchyMismatchError) Category() string { return "HIERARCHY_MISMATCH" }
func (e *HierarchyMismatchError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *HierarchyMismatchError) Unwrap() error    { return nil }

// NewHierarchyMismatchError cria o erro de divergência entre linha e armazém.
func NewHierarchyMismatchError(locationCode, expected, resolved string) AppError {
	return &HierarchyMismatchError{LocationCode: locationCode, Expected: expected, Resolved: resolved}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helpers de classificação ---

// IsNotFound verifica se algum erro na cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return stderrors.As(err, &notFound)
}

// IsConflict verifica se algum erro na cadeia é um ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return stderrors.As(err, &conflict)
}

// AsAppError devolve o primeiro AppError da cadeia, se houver.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// WrapInternal preserva erros que já são AppError e encapsula os demais como InternalError.
func WrapInternal(msg string, err error) error {
	if _, ok := AsAppError(err); ok {
		return err
	}
	return NewInternalError(msg, err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "an unexpected error occurred"
}
