package locationservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/hierarchy"
	"binstock/internal/pkg/logger"
)

// LocationRepository define o contrato que este Serviço espera do Location Store.
type LocationRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Location, error)
	Create(ctx context.Context, loc domain.Location) (domain.Location, error)
}

// Service cria e consulta localizações.
type Service struct {
	repo   LocationRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Localização.
func NewService(repo LocationRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CreateLocation valida a posição na hierarquia e persiste a localização.
func (s *Service) CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (domain.Location, error) {
	raw := strings.TrimSpace(req.LocationCode)
	if raw == "" {
		return domain.Location{}, apperror.NewMissingFieldError("location_code")
	}

	kind, err := resolveKind(raw, req.Type)
	if err != nil {
		return domain.Location{}, err
	}

	code := domain.NormalizeCode(raw)
	parent := domain.NormalizeOptionalCode(req.ParentLocationCode)

	_, err = s.repo.FindByCode(ctx, code)
	switch {
	case err == nil:
		return domain.Location{}, apperror.NewConflictError(fmt.Sprintf("location %s already exists", code))
	case !apperror.IsNotFound(err):
		return domain.Location{}, apperror.WrapInternal("failed to check existing location", err)
	}

	result, err := hierarchy.Validate(ctx, s.repo, code, parent, kind)
	if err != nil {
		return domain.Location{}, apperror.WrapInternal("failed to validate location hierarchy", err)
	}
	if !result.Valid {
		s.logger.Debug("Localização rejeitada pelo validador.", map[string]interface{}{"code": code, "reason": result.Reason})
		return domain.Location{}, apperror.NewInvalidHierarchyError(result.Reason)
	}

	created, err := s.repo.Create(ctx, domain.Location{Code: code, ParentCode: parent, Kind: kind})
	if err != nil {
		return domain.Location{}, apperror.WrapInternal("failed to create location", err)
	}

	s.logger.Info("Localização criada.", map[string]interface{}{"code": created.Code, "kind": created.Kind})
	return created, nil
}

// GetLocation busca uma localização pelo código.
func (s *Service) GetLocation(ctx context.Context, code string) (domain.Location, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return domain.Location{}, apperror.NewMissingFieldError("location_code")
	}

	loc, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Location{}, apperror.WrapInternal("failed to fetch location", err)
	}
	return loc, nil
}

// ResolveWarehouse informa a qual armazém a localização pertence.
func (s *Service) ResolveWarehouse(ctx context.Context, code string) (domain.WarehouseResolution, error) {
	loc, err := s.GetLocation(ctx, code)
	if err != nil {
		return domain.WarehouseResolution{}, err
	}

	warehouse, err := hierarchy.ResolveWarehouse(ctx, s.repo, loc.Code)
	if errors.Is(err, hierarchy.ErrUnresolvable) {
		return domain.WarehouseResolution{}, apperror.NewHierarchyMismatchError(loc.Code, "", "")
	}
	if err != nil {
		return domain.WarehouseResolution{}, apperror.WrapInternal("failed to resolve warehouse", err)
	}

	return domain.WarehouseResolution{LocationCode: loc.Code, WarehouseCode: warehouse}, nil
}

// resolveKind usa o tipo explícito quando informado; senão, a convenção de nomes.
func resolveKind(rawCode, rawType string) (domain.LocationKind, error) {
	if strings.TrimSpace(rawType) == "" {
		return domain.KindFromCode(rawCode), nil
	}
	kind, ok := domain.ParseLocationKind(rawType)
	if !ok {
		return "", apperror.NewValidationError(fmt.Sprintf("type must be one of [%s %s]", domain.KindWarehouse, domain.KindStorage))
	}
	return kind, nil
}
