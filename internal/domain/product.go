package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product é o registro de estoque de um produto.
// O modelo guarda uma única localização corrente por código de produto.
type Product struct {
	Code         string          `json:"product_code" db:"product_code"`
	LocationCode string          `json:"location_code" db:"location_code"`
	Volume       decimal.Decimal `json:"volume" db:"volume"`
	Quantity     int64           `json:"quantity" db:"quantity"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest é o payload de POST /api/products.
type CreateProductRequest struct {
	ProductCode  string          `json:"product_code" validate:"required" example:"P1"`
	LocationCode string          `json:"location_code,omitempty" example:"BIN1"`
	Volume       decimal.Decimal `json:"volume" validate:"-" swaggertype:"number" example:"1.2"`
}
