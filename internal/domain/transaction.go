package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distingue os movimentos de estoque. Hoje só existe recebimento.
type TransactionType string

const TransactionReceipt TransactionType = "receipt"

// ReceiptLine é uma linha de produto dentro de um recebimento.
type ReceiptLine struct {
	ProductCode  string          `json:"product_code" validate:"required" example:"P1"`
	Qty          int64           `json:"qty" validate:"gte=0" example:"5"`
	Volume       decimal.Decimal `json:"volume" validate:"-" swaggertype:"number" example:"1.2"`
	LocationCode string          `json:"location_code" validate:"required" example:"BIN1"`
}

// ReceiptRequest é o payload de POST /api/transaction/receipt.
type ReceiptRequest struct {
	TransactionDate string        `json:"transaction_date" example:"2024-05-01"`
	WarehouseCode   string        `json:"warehouse_code" validate:"required" example:"WH1"`
	Products        []ReceiptLine `json:"products" validate:"required,min=1,dive"`
}

// StockTransaction é o registro persistido de um recebimento aplicado.
type StockTransaction struct {
	ID              string          `json:"transaction_id" db:"id"`
	Type            TransactionType `json:"type" db:"type"`
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"`
	WarehouseCode   string          `json:"warehouse_code" db:"warehouse_code"`
	Lines           []ReceiptLine   `json:"lines" db:"-"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}
