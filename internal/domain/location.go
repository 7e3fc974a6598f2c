package domain

import (
	"strings"
	"time"
)

// LocationKind identifica o papel de uma localização na hierarquia.
type LocationKind string

const (
	KindWarehouse LocationKind = "warehouse"
	KindStorage   LocationKind = "storage"
)

// storageMarker é a convenção de nomes herdada: códigos com "BIN" são posições de armazenagem.
const storageMarker = "BIN"

// ParseLocationKind converte o valor recebido no payload para o enum (sem diferenciar maiúsculas).
func ParseLocationKind(raw string) (LocationKind, bool) {
	switch LocationKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindWarehouse:
		return KindWarehouse, true
	case KindStorage:
		return KindStorage, true
	}
	return "", false
}

// KindFromCode classifica pelo código bruto (case-sensitive): Storage se contém "BIN", senão Warehouse.
func KindFromCode(rawCode string) LocationKind {
	if strings.Contains(rawCode, storageMarker) {
		return KindStorage
	}
	return KindWarehouse
}

// Location representa um armazém ou uma posição (bin) dentro de um armazém.
type Location struct {
	Code       string       `json:"location_code" db:"code"`
	ParentCode *string      `json:"parent_location_code" db:"parent_code"`
	Kind       LocationKind `json:"type" db:"kind"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}

// IsWarehouse indica se a localização é raiz da hierarquia.
func (l Location) IsWarehouse() bool {
	return l.Kind == KindWarehouse
}

// CreateLocationRequest é o payload de POST /api/create_location.
// Type é opcional; quando ausente vale a convenção de nomes (KindFromCode).
type CreateLocationRequest struct {
	LocationCode       string  `json:"location_code" example:"WH1"`
	ParentLocationCode *string `json:"parent_location_code,omitempty" example:"WH1"`
	Type               string  `json:"type,omitempty" example:"storage"`
}

// WarehouseResolution é a resposta de GET /api/locations/{code}/warehouse.
type WarehouseResolution struct {
	LocationCode  string `json:"location_code"`
	WarehouseCode string `json:"warehouse_code"`
}

// NormalizeCode aplica a normalização de códigos (trim + maiúsculas).
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeOptionalCode trata ponteiro nulo e string vazia como "sem código".
func NormalizeOptionalCode(code *string) *string {
	if code == nil {
		return nil
	}
	normalized := NormalizeCode(*code)
	if normalized == "" {
		return nil
	}
	return &normalized
}
