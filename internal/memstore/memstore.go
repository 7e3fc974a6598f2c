// Package memstore guarda localizações e produtos em memória.
// Usado com STORE_DRIVER=memory e nos testes ponta a ponta.
package memstore

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
)

// LocationStore é o Location Store em memória.
type LocationStore struct {
	mu        sync.RWMutex
	locations map[string]domain.Location
}

func NewLocationStore() *LocationStore {
	return &LocationStore{locations: make(map[string]domain.Location)}
}

// FindByCode devolve NotFoundError quando o código não existe.
func (s *LocationStore) FindByCode(ctx context.Context, code string) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, apperror.NewInternalError("location lookup cancelled", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.locations[domain.NormalizeCode(code)]
	if !ok {
		return domain.Location{}, apperror.NewNotFoundError(fmt.Sprintf("location %s not found", domain.NormalizeCode(code)))
	}
	return cloneLocation(loc), nil
}

// Create insere a localização; código repetido vira ConflictError.
func (s *LocationStore) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, apperror.NewInternalError("location insert cancelled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locations[loc.Code]; exists {
		return domain.Location{}, apperror.NewConflictError(fmt.Sprintf("location %s already exists", loc.Code))
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	s.locations[loc.Code] = cloneLocation(loc)
	return cloneLocation(loc), nil
}

// cloneLocation evita que o chamador altere o ParentCode guardado.
func cloneLocation(loc domain.Location) domain.Location {
	if loc.ParentCode != nil {
		parent := *loc.ParentCode
		loc.ParentCode = &parent
	}
	return loc
}

// ProductStore é o Product Store em memória. Um recebimento é aplicado
// inteiro sob o mesmo lock, então incrementos concorrentes não se perdem.
type ProductStore struct {
	mu           sync.RWMutex
	products     map[string]domain.Product
	transactions []domain.StockTransaction
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]domain.Product)}
}

func (s *ProductStore) FindByCode(ctx context.Context, code string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, apperror.NewInternalError("product lookup cancelled", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[domain.NormalizeCode(code)]
	if !ok {
		return domain.Product{}, apperror.NewProductNotFoundError(domain.NormalizeCode(code))
	}
	return p, nil
}

func (s *ProductStore) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, apperror.NewInternalError("product insert cancelled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.Code]; exists {
		return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("product %s already exists", p.Code))
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	s.products[p.Code] = p
	return p, nil
}

// ApplyReceipt soma as quantidades das linhas e registra a transação.
// Tudo ou nada: se algum produto não existir, nada é alterado.
func (s *ProductStore) ApplyReceipt(ctx context.Context, tx domain.StockTransaction) error {
	if err := ctx.Err(); err != nil {
		return apperror.NewInternalError("receipt apply cancelled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Confere tudo antes de alterar: produto existente e soma sem estourar int64,
	// inclusive quando o mesmo produto aparece em várias linhas.
	totals := make(map[string]int64, len(tx.Lines))
	for _, line := range tx.Lines {
		p, ok := s.products[line.ProductCode]
		if !ok {
			return apperror.NewProductNotFoundError(line.ProductCode)
		}
		current, seen := totals[line.ProductCode]
		if !seen {
			current = p.Quantity
		}
		if line.Qty > math.MaxInt64-current {
			return apperror.NewQuantityOverflowError(line.ProductCode)
		}
		totals[line.ProductCode] = current + line.Qty
	}

	now := time.Now().UTC()
	for _, line := range tx.Lines {
		p := s.products[line.ProductCode]
		p.Quantity += line.Qty
		p.LocationCode = line.LocationCode
		p.Volume = line.Volume
		p.UpdatedAt = now
		s.products[line.ProductCode] = p
	}

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.Lines = append([]domain.ReceiptLine(nil), tx.Lines...)
	s.transactions = append(s.transactions, tx)
	return nil
}

// Transactions devolve uma cópia dos recebimentos registrados, em ordem.
func (s *ProductStore) Transactions() []domain.StockTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.StockTransaction(nil), s.transactions...)
}
