package productrepo_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/logger"
	"binstock/internal/repository/productrepo"
)

var productCols = []string{"product_code", "location_code", "volume", "quantity", "created_at", "updated_at"}

func newRepo(t *testing.T) (*productrepo.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return productrepo.NewProductRepository(sqlx.NewDb(db, "postgres"), time.Second, logger.NewNop()), mock
}

func TestFindByCode_ScansRow(t *testing.T) {
	repo, mock := newRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(productCols).AddRow("P1", "BIN1", "1.2", int64(7), now, now)
	mock.ExpectQuery("FROM products WHERE product_code").
		WithArgs("P1").
		WillReturnRows(rows)

	p, err := repo.FindByCode(context.Background(), " p1 ")

	require.NoError(t, err)
	assert.Equal(t, "P1", p.Code)
	assert.Equal(t, "BIN1", p.LocationCode)
	assert.True(t, decimal.RequireFromString("1.2").Equal(p.Volume))
	assert.Equal(t, int64(7), p.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCode_NoRowsIsNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM products").
		WillReturnRows(sqlmock.NewRows(productCols))

	_, err := repo.FindByCode(context.Background(), "NOPE")

	assert.True(t, apperror.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByCode_DBFailureIsInternal(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM products").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByCode(context.Background(), "P1")

	status, category, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", category)
}

func TestCreate_ReturnsInsertedRow(t *testing.T) {
	repo, mock := newRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("P1", "BIN1", sqlmock.AnyArg(), int64(3)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow("P1", "BIN1", "0.5", int64(3), now, now))

	created, err := repo.Create(context.Background(), domain.Product{
		Code:         "P1",
		LocationCode: "BIN1",
		Volume:       decimal.RequireFromString("0.5"),
		Quantity:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, "P1", created.Code)
	assert.Equal(t, int64(3), created.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationIsConflict(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.Product{Code: "P1", LocationCode: "BIN1"})

	assert.True(t, apperror.IsConflict(err))
	assert.Contains(t, err.Error(), "product P1 already exists")
}
