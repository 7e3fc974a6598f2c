package productservice

import (
	"context"
	"fmt"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/logger"
	"binstock/internal/pkg/validation"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência.
type ProductRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Product, error)
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
}

// LocationRepository é usado para conferir a localização inicial do produto.
type LocationRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Location, error)
}

// Service cadastra e consulta registros de estoque de produtos.
type Service struct {
	repo      ProductRepository
	locations LocationRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, locations LocationRepository, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		locations: locations,
		validator: validation.New(),
		logger:    log,
	}
}

// CreateProduct registra o produto com quantidade zero.
func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Product{}, err
	}
	code := domain.NormalizeCode(req.ProductCode)
	if code == "" {
		return domain.Product{}, apperror.NewMissingFieldError("product_code")
	}
	if req.Volume.IsNegative() {
		return domain.Product{}, apperror.NewValidationError("volume must be greater than or equal to 0")
	}

	locationCode := domain.NormalizeCode(req.LocationCode)
	if locationCode != "" {
		loc, err := s.locations.FindByCode(ctx, locationCode)
		if apperror.IsNotFound(err) {
			return domain.Product{}, apperror.NewInvalidHierarchyError(fmt.Sprintf("location %s does not exist", locationCode))
		}
		if err != nil {
			return domain.Product{}, apperror.WrapInternal("failed to fetch product location", err)
		}
		if loc.Kind != domain.KindStorage {
			return domain.Product{}, apperror.NewInvalidHierarchyError("product location must be a storage location")
		}
	}

	created, err := s.repo.Create(ctx, domain.Product{
		Code:         code,
		LocationCode: locationCode,
		Volume:       req.Volume,
	})
	if err != nil {
		return domain.Product{}, apperror.WrapInternal("failed to create product", err)
	}

	s.logger.Info("Produto cadastrado.", map[string]interface{}{"product_code": created.Code})
	return created, nil
}

// GetProduct busca o registro de estoque pelo código.
func (s *Service) GetProduct(ctx context.Context, code string) (domain.Product, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return domain.Product{}, apperror.NewMissingFieldError("product_code")
	}

	p, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Product{}, apperror.WrapInternal("failed to fetch product", err)
	}
	return p, nil
}
