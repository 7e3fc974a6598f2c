package locationservice_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"binstock/internal/domain"
	apperror "binstock/internal/errors"
	"binstock/internal/memstore"
	"binstock/internal/pkg/logger"
	"binstock/internal/service/locationservice"
)

// MockLocationRepository é uma implementação mock da interface LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByCode(ctx context.Context, code string) (domain.Location, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockLocationRepository) Create(ctx context.Context, loc domain.Location) (domain.Location, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(domain.Location), args.Error(1)
}

func strPtr(s string) *string { return &s }

func notFound(code string) error {
	return apperror.NewNotFoundError("location " + code + " not found")
}

func TestCreateLocation_Warehouse(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	svc := locationservice.NewService(mockRepo, logger.NewLogger("debug"))

	expected := domain.Location{Code: "WH1", Kind: domain.KindWarehouse}
	mockRepo.On("FindByCode", mock.Anything, "WH1").Return(domain.Location{}, notFound("WH1"))
	mockRepo.On("Create", mock.Anything, expected).Return(expected, nil)

	loc, err := svc.CreateLocation(context.Background(), domain.CreateLocationRequest{LocationCode: " wh1 "})

	require.NoError(t, err)
	assert.Equal(t, expected, loc)
	mockRepo.AssertExpectations(t)
}

func TestCreateLocation_StorageUnderWarehouse(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	svc := locationservice.NewService(mockRepo, logger.NewLogger("debug"))

	mockRepo.On("FindByCode", mock.Anything, "BIN1").Return(domain.Location{}, notFound("BIN1"))
	mockRepo.On("FindByCode", mock.Anything, "WH1").Return(domain.Location{Code: "WH1", Kind: domain.KindWarehouse}, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(l domain.Location) bool {
		return l.Code == "BIN1" && l.Kind == domain.KindStorage && l.ParentCode != nil && *l.ParentCode == "WH1"
	})).Return(domain.Location{Code: "BIN1", ParentCode: strPtr("WH1"), Kind: domain.KindStorage}, nil)

	loc, err := svc.CreateLocation(context.Background(), domain.CreateLocationRequest{
		LocationCode:       "BIN1",
		ParentLocationCode: strPtr("wh1"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.KindStorage, loc.Kind)
	mockRepo.AssertExpectations(t)
}

func TestCreateLocation_ExplicitTypeOverridesNaming(t *testing.T) {
	store := memstore.NewLocationStore()
	svc := locationservice.NewService(store, logger.NewNop())
	ctx := context.Background()

	_, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{LocationCode: "WH1"})
	require.NoError(t, err)

	shelf, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{
		LocationCode:       "SHELF-A",
		ParentLocationCode: strPtr("WH1"),
		Type:               "Storage",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.KindStorage, shelf.Kind)
}

func TestCreateLocation_Rejections(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewLocationStore()
	svc := locationservice.NewService(store, logger.NewNop())
	_, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{LocationCode: "WH1"})
	require.NoError(t, err)
	_, err = svc.CreateLocation(ctx, domain.CreateLocationRequest{LocationCode: "BIN1", ParentLocationCode: strPtr("WH1")})
	require.NoError(t, err)

	tests := []struct {
		name     string
		req      domain.CreateLocationRequest
		category string
		message  string
	}{
		{"código vazio", domain.CreateLocationRequest{LocationCode: "   "}, "VALIDATION_ERROR", "location_code is required"},
		{"tipo inválido", domain.CreateLocationRequest{LocationCode: "X1", Type: "shelf"}, "VALIDATION_ERROR", "type must be one of [warehouse storage]"},
		{"duplicado", domain.CreateLocationRequest{LocationCode: "wh1"}, "CONFLICT", "location WH1 already exists"},
		{"bin sem pai", domain.CreateLocationRequest{LocationCode: "BIN2"}, "INVALID_HIERARCHY", "warehouse creation failed"},
		{"pai inexistente", domain.CreateLocationRequest{LocationCode: "BIN2", ParentLocationCode: strPtr("WH9")}, "INVALID_HIERARCHY", "parent does not exist"},
		{"armazém com pai", domain.CreateLocationRequest{LocationCode: "WH2", ParentLocationCode: strPtr("WH1")}, "INVALID_HIERARCHY", "warehouse cannot have a parent"},
		{"bin dentro de bin", domain.CreateLocationRequest{LocationCode: "BIN2", ParentLocationCode: strPtr("BIN1")}, "INVALID_HIERARCHY", "storage must have a warehouse parent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateLocation(ctx, tt.req)

			require.Error(t, err)
			_, category, message := apperror.MapToHTTPStatus(err)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestCreateLocation_StoreFailureIsInternal(t *testing.T) {
	mockRepo := new(MockLocationRepository)
	svc := locationservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("FindByCode", mock.Anything, "WH1").Return(domain.Location{}, errors.New("connection refused"))

	_, err := svc.CreateLocation(context.Background(), domain.CreateLocationRequest{LocationCode: "WH1"})

	status, category, _ := apperror.MapToHTTPStatus(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", category)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolveWarehouse(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewLocationStore()
	svc := locationservice.NewService(store, logger.NewNop())
	_, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{LocationCode: "WH1"})
	require.NoError(t, err)
	_, err = svc.CreateLocation(ctx, domain.CreateLocationRequest{LocationCode: "BIN1", ParentLocationCode: strPtr("WH1")})
	require.NoError(t, err)
	// Registro legado com pai pendente, inserido direto no store.
	_, err = store.Create(ctx, domain.Location{Code: "BIN9", ParentCode: strPtr("GHOST"), Kind: domain.KindStorage})
	require.NoError(t, err)

	res, err := svc.ResolveWarehouse(ctx, "bin1")
	require.NoError(t, err)
	assert.Equal(t, domain.WarehouseResolution{LocationCode: "BIN1", WarehouseCode: "WH1"}, res)

	res, err = svc.ResolveWarehouse(ctx, "WH1")
	require.NoError(t, err)
	assert.Equal(t, "WH1", res.WarehouseCode)

	_, err = svc.ResolveWarehouse(ctx, "NOPE")
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.ResolveWarehouse(ctx, "BIN9")
	assert.IsType(t, &apperror.HierarchyMismatchError{}, err)
	assert.Equal(t, "location BIN9 does not belong to any warehouse", err.Error())
}
