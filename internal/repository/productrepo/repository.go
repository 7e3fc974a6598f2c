package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/database"
	"binstock/internal/pkg/logger"
)

// ProductRepository é o Product Store sobre PostgreSQL (leitura e cadastro).
// Os incrementos de quantidade ficam no stockrepo.
type ProductRepository struct {
	DB        *sqlx.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
func NewProductRepository(db *sqlx.DB, dbTimeout time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

const productColumns = `product_code, location_code, volume, quantity, created_at, updated_at`

// FindByCode busca o registro de estoque de um produto.
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (domain.Product, error) {
	code = domain.NormalizeCode(code)
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE product_code = $1`

	var p domain.Product
	err := r.DB.GetContext(ctxTimeout, &p, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, apperror.NewProductNotFoundError(code)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar produto no DB.", err)
		return domain.Product{}, apperror.NewDBError("failed to fetch product", err)
	}
	return p, nil
}

// Create cadastra o produto com quantidade inicial.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		INSERT INTO products (product_code, location_code, volume, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns

	var created domain.Product
	err := r.DB.GetContext(ctxTimeout, &created, query, p.Code, p.LocationCode, p.Volume, p.Quantity)
	if database.IsUniqueViolation(err) {
		return domain.Product{}, apperror.NewConflictError(fmt.Sprintf("product %s already exists", p.Code))
	}
	if err != nil {
		r.logger.Error("Falha ao inserir produto.", err)
		return domain.Product{}, apperror.NewDBError("failed to insert product", err)
	}
	return created, nil
}
