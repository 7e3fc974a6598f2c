package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SQLSTATEs do PostgreSQL tratados pela aplicação.
const (
	uniqueViolation        = "23505"
	numericValueOutOfRange = "22003"
)

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
// Retorna a conexão *sqlx.DB pronta para uso; db.DB expõe o *sql.DB para o goose.
func NewPostgresDB(dataSourceName string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}

// IsUniqueViolation indica se o erro veio de uma constraint UNIQUE/PK.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsNumericOutOfRange indica estouro de tipo numérico (ex: BIGINT além do limite).
func IsNumericOutOfRange(err error) bool {
	return hasCode(err, numericValueOutOfRange)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
