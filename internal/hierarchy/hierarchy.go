// Package hierarchy contém as regras da árvore de localizações:
// quem pode ser pai de quem, e a qual armazém uma localização pertence.
package hierarchy

import (
	"context"
	"errors"
	"fmt"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
)

// Motivos de rejeição devolvidos por Validate.
const (
	ReasonRootMustBeWarehouse         = "warehouse creation failed"
	ReasonParentMissing               = "parent does not exist"
	ReasonWarehouseWithParent         = "warehouse cannot have a parent"
	ReasonStorageNeedsWarehouseParent = "storage must have a warehouse parent"
)

// MaxDepth limita a subida na árvore; cadeias mais longas são tratadas como ciclo.
const MaxDepth = 32

// ErrUnresolvable indica que a localização não leva a nenhum armazém
// (inexistente, pai pendente, cadeia sem armazém ou ciclo).
var ErrUnresolvable = errors.New("location does not resolve to a warehouse")

// LocationFinder é o único acesso ao Location Store que estas regras precisam.
// Deve devolver um NotFoundError quando o código não existir.
type LocationFinder interface {
	FindByCode(ctx context.Context, code string) (domain.Location, error)
}

// Result é o veredito do validador.
type Result struct {
	Valid  bool
	Reason string
}

func invalid(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// Validate decide se (code, parentCode, kind) pode ser inserido.
// Só consulta o store; erros de infraestrutura voltam como error, nunca como Result inválido.
func Validate(ctx context.Context, finder LocationFinder, code string, parentCode *string, kind domain.LocationKind) (Result, error) {
	parent := domain.NormalizeOptionalCode(parentCode)
	if parent == nil {
		if kind != domain.KindWarehouse {
			return invalid(ReasonRootMustBeWarehouse), nil
		}
		return Result{Valid: true}, nil
	}

	// O próprio código ainda não existe, logo não pode ser o pai.
	if *parent == domain.NormalizeCode(code) {
		return invalid(ReasonParentMissing), nil
	}

	parentLocation, err := finder.FindByCode(ctx, *parent)
	if err != nil {
		if apperror.IsNotFound(err) {
			return invalid(ReasonParentMissing), nil
		}
		return Result{}, fmt.Errorf("lookup parent %s: %w", *parent, err)
	}

	if kind == domain.KindWarehouse {
		return invalid(ReasonWarehouseWithParent), nil
	}
	if kind == domain.KindStorage && !parentLocation.IsWarehouse() {
		return invalid(ReasonStorageNeedsWarehouseParent), nil
	}

	return Result{Valid: true}, nil
}

// ResolveWarehouse sobe pelos parent_code a partir de code até encontrar um armazém.
// Um armazém resolve para si mesmo.
func ResolveWarehouse(ctx context.Context, finder LocationFinder, code string) (string, error) {
	current := domain.NormalizeCode(code)
	visited := make(map[string]struct{}, 4)

	for depth := 0; depth < MaxDepth; depth++ {
		if _, seen := visited[current]; seen {
			return "", ErrUnresolvable
		}
		visited[current] = struct{}{}

		location, err := finder.FindByCode(ctx, current)
		if err != nil {
			if apperror.IsNotFound(err) {
				return "", ErrUnresolvable
			}
			return "", fmt.Errorf("resolve warehouse for %s: %w", code, err)
		}

		if location.IsWarehouse() {
			return location.Code, nil
		}

		next := domain.NormalizeOptionalCode(location.ParentCode)
		if next == nil {
			return "", ErrUnresolvable
		}
		current = *next
	}

	return "", ErrUnresolvable
}
