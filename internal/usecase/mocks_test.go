package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/collection-points/internal/domain"
)

// MockPointRepository is a mock of PointRepository
type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) Create(ctx context.Context, point *domain.Point, categoryIDs []int64) (*domain.Point, error) {
	args := m.Called(ctx, point, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

func (m *MockPointRepository) GetByID(ctx context.Context, id int64) (*domain.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

func (m *MockPointRepository) Query(ctx context.Context, filter domain.PointFilter) ([]*domain.Point, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Point), args.Error(1)
}

// MockCategoryRepository is a mock of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockImageStorage is a mock of ImageStorage
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Store(ctx context.Context, data []byte, originalName string) (string, error) {
	args := m.Called(ctx, data, originalName)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetPoint(ctx context.Context, id int64) (*domain.Point, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

func (m *MockCacheRepository) SetPoint(ctx context.Context, point *domain.Point, ttl time.Duration) error {
	args := m.Called(ctx, point, ttl)
	return args.Error(0)
}

var seedCategories = []domain.Category{
	{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
	{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
	{ID: 3, Title: "Papéis e Papelão", Image: "papeis-papelao.svg"},
}
