package stockrepo

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/database"
	"binstock/internal/pkg/logger"
)

// StockRepository aplica recebimentos no PostgreSQL.
type StockRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewStockRepository cria e retorna uma nova instância do Repositório de Estoque.
func NewStockRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *StockRepository {
	return &StockRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// transactionLine é a linha gravada em stock_transaction_lines.
type transactionLine struct {
	TransactionID string          `db:"transaction_id"`
	LineNo        int             `db:"line_no"`
	ProductCode   string          `db:"product_code"`
	LocationCode  string          `db:"location_code"`
	Qty           int64           `db:"qty"`
	Volume        decimal.Decimal `db:"volume"`
}

const (
	incrementSQL = `
		UPDATE products
		SET quantity = quantity + $1, location_code = $2, volume = $3, updated_at = NOW()
		WHERE product_code = $4`

	insertTransactionSQL = `
		INSERT INTO stock_transactions (id, type, transaction_date, warehouse_code, created_at)
		VALUES (:id, :type, :transaction_date, :warehouse_code, :created_at)`

	insertLineSQL = `
		INSERT INTO stock_transaction_lines (transaction_id, line_no, product_code, location_code, qty, volume)
		VALUES (:transaction_id, :line_no, :product_code, :location_code, :qty, :volume)`
)

// ApplyReceipt grava o recebimento inteiro numa única transação:
// incremento atômico por linha e o registro em stock_transactions.
// Qualquer falha desfaz tudo.
func (r *StockRepository) ApplyReceipt(ctx context.Context, stx domain.StockTransaction) error {
	r.logger.Debug("Aplicando recebimento no repositório.", map[string]interface{}{
		"transaction_id": stx.ID,
		"warehouse_code": stx.WarehouseCode,
		"lines":          len(stx.Lines),
	})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTxx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de recebimento.", err)
		return apperror.NewDBError("failed to start tx", err)
	}
	defer tx.Rollback() // sem efeito depois do Commit

	for _, line := range stx.Lines {
		result, err := tx.ExecContext(ctxTimeout, incrementSQL, line.Qty, line.LocationCode, line.Volume, line.ProductCode)
		if database.IsNumericOutOfRange(err) {
			return apperror.NewQuantityOverflowError(line.ProductCode)
		}
		if err != nil {
			r.logger.Error("Falha ao incrementar estoque.", err)
			return apperror.NewDBError("failed to update product quantity", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return apperror.NewDBError("failed to read affected rows", err)
		}
		if rowsAffected == 0 {
			// Produto removido entre a validação e a escrita.
			r.logger.Warn("Produto sumiu durante o recebimento.", map[string]interface{}{"product_code": line.ProductCode})
			return apperror.NewProductNotFoundError(line.ProductCode)
		}
	}

	if _, err := tx.NamedExecContext(ctxTimeout, insertTransactionSQL, stx); err != nil {
		r.logger.Error("Falha ao registrar transação de estoque.", err)
		return apperror.NewDBError("failed to insert stock transaction", err)
	}

	for i, line := range stx.Lines {
		row := transactionLine{
			TransactionID: stx.ID,
			LineNo:        i + 1,
			ProductCode:   line.ProductCode,
			LocationCode:  line.LocationCode,
			Qty:           line.Qty,
			Volume:        line.Volume,
		}
		if _, err := tx.NamedExecContext(ctxTimeout, insertLineSQL, row); err != nil {
			r.logger.Error("Falha ao registrar linha da transação.", err)
			return apperror.NewDBError("failed to insert stock transaction line", err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de recebimento.", err)
		return apperror.NewDBError("failed to commit tx", err)
	}

	r.logger.Info("Recebimento aplicado com sucesso.", map[string]interface{}{
		"transaction_id": stx.ID,
		"warehouse_code": stx.WarehouseCode,
	})
	return nil
}
