package receiptservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/hierarchy"
	"binstock/internal/pkg/logger"
	"binstock/internal/pkg/validation"
)

// LocationRepository é o acesso de leitura ao Location Store.
type LocationRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Location, error)
}

// ProductRepository é o acesso de leitura ao Product Store.
type ProductRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Product, error)
}

// StockRepository aplica um recebimento inteiro de forma atômica.
type StockRepository interface {
	ApplyReceipt(ctx context.Context, tx domain.StockTransaction) error
}

// Formatos aceitos em transaction_date.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Service processa recebimentos de estoque.
type Service struct {
	locations LocationRepository
	products  ProductRepository
	stock     StockRepository
	validator *validation.Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewService cria e retorna uma nova instância do Serviço de Recebimento.
func NewService(locations LocationRepository, products ProductRepository, stock StockRepository, log logger.Logger) *Service {
	return &Service{
		locations: locations,
		products:  products,
		stock:     stock,
		validator: validation.New(),
		logger:    log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ProcessReceipt confere todas as linhas contra a hierarquia e só então grava.
// Qualquer linha inválida (localização de outro armazém, produto inexistente)
// rejeita o recebimento inteiro sem alterar nenhum produto.
func (s *Service) ProcessReceipt(ctx context.Context, req domain.ReceiptRequest) (domain.StockTransaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.StockTransaction{}, err
	}
	// "required" aceita só espaços; o código normalizado precisa ser conferido.
	for i, line := range req.Products {
		if domain.NormalizeCode(line.ProductCode) == "" {
			return domain.StockTransaction{}, apperror.NewMissingFieldError(fmt.Sprintf("products[%d].product_code", i))
		}
		if domain.NormalizeCode(line.LocationCode) == "" {
			return domain.StockTransaction{}, apperror.NewMissingFieldError(fmt.Sprintf("products[%d].location_code", i))
		}
		if line.Volume.IsNegative() {
			return domain.StockTransaction{}, apperror.NewValidationError(fmt.Sprintf("products[%d].volume must be greater than or equal to 0", i))
		}
	}

	txDate, err := s.parseDate(req.TransactionDate)
	if err != nil {
		return domain.StockTransaction{}, err
	}

	warehouseCode := domain.NormalizeCode(req.WarehouseCode)
	if warehouseCode == "" {
		return domain.StockTransaction{}, apperror.NewMissingFieldError("warehouse_code")
	}
	warehouse, err := s.locations.FindByCode(ctx, warehouseCode)
	if apperror.IsNotFound(err) {
		return domain.StockTransaction{}, apperror.NewWarehouseNotFoundError(warehouseCode)
	}
	if err != nil {
		return domain.StockTransaction{}, apperror.WrapInternal("failed to fetch warehouse", err)
	}
	if !warehouse.IsWarehouse() {
		return domain.StockTransaction{}, apperror.NewWarehouseNotFoundError(warehouseCode)
	}

	lines := make([]domain.ReceiptLine, 0, len(req.Products))
	for _, line := range req.Products {
		line.ProductCode = domain.NormalizeCode(line.ProductCode)
		line.LocationCode = domain.NormalizeCode(line.LocationCode)

		if err := s.checkLine(ctx, warehouseCode, line); err != nil {
			return domain.StockTransaction{}, err
		}
		lines = append(lines, line)
	}

	stx := domain.StockTransaction{
		ID:              uuid.New().String(),
		Type:            domain.TransactionReceipt,
		TransactionDate: txDate,
		WarehouseCode:   warehouseCode,
		Lines:           lines,
		CreatedAt:       s.now(),
	}
	if err := s.stock.ApplyReceipt(ctx, stx); err != nil {
		return domain.StockTransaction{}, apperror.WrapInternal("failed to apply receipt", err)
	}

	s.logger.Info("Recebimento processado.", map[string]interface{}{
		"transaction_id": stx.ID,
		"warehouse_code": warehouseCode,
		"lines":          len(lines),
	})
	return stx, nil
}

// checkLine garante que a localização pertence ao armazém e que o produto existe.
func (s *Service) checkLine(ctx context.Context, warehouseCode string, line domain.ReceiptLine) error {
	resolved, err := hierarchy.ResolveWarehouse(ctx, s.locations, line.LocationCode)
	if errors.Is(err, hierarchy.ErrUnresolvable) {
		return apperror.NewHierarchyMismatchError(line.LocationCode, warehouseCode, "")
	}
	if err != nil {
		return apperror.WrapInternal("failed to resolve line location", err)
	}
	if resolved != warehouseCode {
		s.logger.Debug("Linha fora do armazém declarado.", map[string]interface{}{
			"location_code": line.LocationCode,
			"expected":      warehouseCode,
			"resolved":      resolved,
		})
		return apperror.NewHierarchyMismatchError(line.LocationCode, warehouseCode, resolved)
	}

	if _, err := s.products.FindByCode(ctx, line.ProductCode); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewProductNotFoundError(line.ProductCode)
		}
		return apperror.WrapInternal("failed to fetch product", err)
	}
	return nil
}

// parseDate aceita RFC3339 ou só a data; vazio significa agora.
func (s *Service) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperror.NewValidationError("transaction_date must be RFC3339 or YYYY-MM-DD")
}
