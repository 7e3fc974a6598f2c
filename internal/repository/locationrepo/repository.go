package locationrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/pkg/cache"
	"binstock/internal/pkg/database"
	"binstock/internal/pkg/logger"
)

// Define a chave de cache para localizações.
const locationCacheKey = "location:%s"

// LocationRepository é o Location Store sobre PostgreSQL, com cache-aside opcional no Redis.
// Localizações nunca são alteradas depois de criadas, então o cache não precisa de invalidação.
type LocationRepository struct {
	DB        *sqlx.DB
	Cache     cache.Client // nil desliga o cache
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewLocationRepository cria o repositório. cacheClient pode ser nil.
func NewLocationRepository(db *sqlx.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *LocationRepository {
	return &LocationRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// FindByCode busca uma localização pelo código (Cache-Aside).
func (r *LocationRepository) FindByCode(ctx context.Context, code string) (domain.Location, error) {
	code = domain.NormalizeCode(code)
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(locationCacheKey, code)
	if loc, ok := r.fromCache(ctxTimeout, key); ok {
		return loc, nil
	}

	const query = `SELECT code, parent_code, kind, created_at FROM locations WHERE code = $1`

	var loc domain.Location
	err := r.DB.GetContext(ctxTimeout, &loc, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Location{}, apperror.NewNotFoundError(fmt.Sprintf("location %s not found", code))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar localização no DB.", err)
		return domain.Location{}, apperror.NewDBError("failed to fetch location", err)
	}

	r.toCache(ctxTimeout, key, loc)
	return loc, nil
}

// Create insere a localização. Violação de chave única vira ConflictError.
func (r *LocationRepository) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		INSERT INTO locations (code, parent_code, kind)
		VALUES ($1, $2, $3)
		RETURNING code, parent_code, kind, created_at`

	var created domain.Location
	err := r.DB.GetContext(ctxTimeout, &created, query, loc.Code, loc.ParentCode, loc.Kind)
	if database.IsUniqueViolation(err) {
		return domain.Location{}, apperror.NewConflictError(fmt.Sprintf("location %s already exists", loc.Code))
	}
	if err != nil {
		r.logger.Error("Falha ao inserir localização.", err)
		return domain.Location{}, apperror.NewDBError("failed to insert location", err)
	}

	r.logger.Debug("Localização inserida.", map[string]interface{}{"code": created.Code, "kind": created.Kind})
	return created, nil
}

// fromCache nunca falha: erro de Redis só é logado e a busca segue para o DB.
func (r *LocationRepository) fromCache(ctx context.Context, key string) (domain.Location, bool) {
	if r.Cache == nil {
		return domain.Location{}, false
	}

	cached, err := r.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn("Falha ao ler do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return domain.Location{}, false
	}

	var loc domain.Location
	if err := json.Unmarshal([]byte(cached), &loc); err != nil {
		r.logger.Warn("Entrada de cache corrompida.", map[string]interface{}{"key": key})
		return domain.Location{}, false
	}
	return loc, true
}

func (r *LocationRepository) toCache(ctx context.Context, key string, loc domain.Location) {
	if r.Cache == nil {
		return
	}

	payload, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, payload, r.CacheTTL); err != nil {
		r.logger.Warn("Falha ao gravar no cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
