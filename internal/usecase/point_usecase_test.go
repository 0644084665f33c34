package usecase_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/collection-points/internal/domain"
	"github.com/collection-points/internal/pkg/errors"
	"github.com/collection-points/internal/pkg/validator"
	"github.com/collection-points/internal/usecase"
	"github.com/collection-points/internal/usecase/dto"
)

const testBaseURL = "http://localhost:3333/uploads"

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type pointFixture struct {
	repo    *MockPointRepository
	cache   *MockCacheRepository
	storage *MockImageStorage
	uc      *usecase.PointUseCase
}

func newPointFixture(t *testing.T, withCache bool) *pointFixture {
	t.Helper()

	categoryRepo := &MockCategoryRepository{}
	categoryRepo.On("List", mock.Anything).Return(seedCategories, nil)
	catalog := usecase.NewCategoryCatalog(categoryRepo, zap.NewNop())
	require.NoError(t, catalog.Load(context.Background()))

	f := &pointFixture{
		repo:    &MockPointRepository{},
		cache:   &MockCacheRepository{},
		storage: &MockImageStorage{},
	}

	policy := validator.ImagePolicy{MaxSize: 1 << 10, Allowed: []string{"image/png", "image/jpeg"}}

	if withCache {
		f.uc = usecase.NewPointUseCase(f.repo, f.cache, f.storage, catalog,
			dto.NewPresenter(testBaseURL), policy, zap.NewNop(), time.Minute)
	} else {
		f.uc = usecase.NewPointUseCase(f.repo, nil, f.storage, catalog,
			dto.NewPresenter(testBaseURL), policy, zap.NewNop(), time.Minute)
	}

	return f
}

func validRequest() dto.CreatePointRequest {
	return dto.CreatePointRequest{
		Name:      " Mercado Verde ",
		Email:     "contato@mercadoverde.com",
		Whatsapp:  "11999990000",
		Latitude:  "-23.5505",
		Longitude: "-46.6333",
		City:      "São Paulo",
		UF:        "SP",
		Items:     "2, 1",
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, errors.CodeValidationFailed, appErr.Code)

	fields, ok := appErr.Details["fields"].(map[string]string)
	require.True(t, ok)
	return fields
}

func TestPointUseCase_CreatePoint(t *testing.T) {
	ctx := context.Background()

	t.Run("success with image", func(t *testing.T) {
		f := newPointFixture(t, true)
		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		ref := "0f1e2d-loja.png"

		f.storage.On("Store", ctx, pngBytes, "loja.png").Return(ref, nil).Once()
		f.repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Point) bool {
			return p.Name == "Mercado Verde" && p.Latitude == -23.5505 &&
				p.Image != nil && *p.Image == ref
		}), []int64{1, 2}).Return(&domain.Point{
			ID:          1,
			Name:        "Mercado Verde",
			City:        "São Paulo",
			UF:          "SP",
			Latitude:    -23.5505,
			Longitude:   -46.6333,
			Image:       &ref,
			CreatedAt:   createdAt,
			CategoryIDs: []int64{1, 2},
		}, nil).Once()
		f.cache.On("SetPoint", ctx, mock.AnythingOfType("*domain.Point"), time.Minute).Return(nil).Once()

		resp, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		require.NotNil(t, resp.ImageURL)
		assert.Equal(t, testBaseURL+"/"+ref, *resp.ImageURL)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "Lâmpadas", resp.Items[0].Title)
		assert.Equal(t, testBaseURL+"/baterias.svg", resp.Items[1].ImageURL)

		f.storage.AssertExpectations(t)
		f.repo.AssertExpectations(t)
		f.cache.AssertExpectations(t)
	})

	t.Run("success without image", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Point) bool {
			return p.Image == nil
		}), []int64{3}).Return(&domain.Point{ID: 2, CategoryIDs: []int64{3}}, nil).Once()

		req := validRequest()
		req.Items = "3"
		resp, err := f.uc.CreatePoint(ctx, req, nil)

		require.NoError(t, err)
		assert.Nil(t, resp.ImageURL)
		f.storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("all field violations reported at once", func(t *testing.T) {
		f := newPointFixture(t, true)

		req := dto.CreatePointRequest{
			Email:     "not-an-email",
			Whatsapp:  "abc",
			Latitude:  "north",
			Longitude: "-46.6",
			City:      "Recife",
			UF:        "PER",
			Items:     "1,x",
		}
		_, err := f.uc.CreatePoint(ctx, req, &dto.ImageUpload{Filename: "a.txt", Data: []byte("plain text")})

		fields := validationFields(t, err)
		assert.Equal(t, map[string]string{
			"name":     "required",
			"email":    "email",
			"whatsapp": "numeric",
			"latitude": "float",
			"uf":       "max=2",
			"items":    "list",
			"image":    "mime",
		}, fields)

		f.storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("values longer than their columns", func(t *testing.T) {
		f := newPointFixture(t, true)

		req := validRequest()
		req.Name = strings.Repeat("n", 256)
		req.City = strings.Repeat("c", 300)
		req.Whatsapp = strings.Repeat("9", 40)
		_, err := f.uc.CreatePoint(ctx, req, &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		assert.Equal(t, map[string]string{
			"name":     "max=255",
			"city":     "max=255",
			"whatsapp": "max=32",
		}, validationFields(t, err))

		f.storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("coordinates accept any decimal notation", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Point) bool {
			return p.Latitude == 0.5 && p.Longitude == 0.001
		}), []int64{1, 2}).Return(&domain.Point{ID: 6, CategoryIDs: []int64{1, 2}}, nil).Once()

		req := validRequest()
		req.Latitude = ".5"
		req.Longitude = "1e-3"
		resp, err := f.uc.CreatePoint(ctx, req, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(6), resp.ID)
		f.repo.AssertExpectations(t)
	})

	t.Run("empty image file is treated as absent", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Point) bool {
			return p.Image == nil
		}), []int64{1, 2}).Return(&domain.Point{ID: 7, CategoryIDs: []int64{1, 2}}, nil).Once()

		resp, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "vazio.png"})

		require.NoError(t, err)
		assert.Nil(t, resp.ImageURL)
		f.storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank items list", func(t *testing.T) {
		f := newPointFixture(t, true)

		req := validRequest()
		req.Items = " , "
		_, err := f.uc.CreatePoint(ctx, req, nil)

		assert.Equal(t, "required", validationFields(t, err)["items"])
	})

	t.Run("oversized image", func(t *testing.T) {
		f := newPointFixture(t, true)

		big := append(append([]byte{}, pngBytes...), make([]byte, 2<<10)...)
		_, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "big.png", Data: big})

		assert.Equal(t, map[string]string{"image": "max"}, validationFields(t, err))
	})

	t.Run("unknown category rejected before any write", func(t *testing.T) {
		f := newPointFixture(t, true)

		req := validRequest()
		req.Items = "1,99"
		_, err := f.uc.CreatePoint(ctx, req, &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrUnknownCategory))

		var appErr *errors.AppError
		require.True(t, stderrors.As(err, &appErr))
		assert.Equal(t, []int64{99}, appErr.Details["category_ids"])

		f.storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure stops creation", func(t *testing.T) {
		f := newPointFixture(t, true)

		f.storage.On("Store", ctx, pngBytes, "loja.png").
			Return("", errors.ErrStorageWriteFailed).Once()

		_, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		assert.True(t, stderrors.Is(err, errors.ErrStorageWriteFailed))
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("persistence failure removes stored image", func(t *testing.T) {
		f := newPointFixture(t, true)
		ref := "aa11-loja.png"

		f.storage.On("Store", ctx, pngBytes, "loja.png").Return(ref, nil).Once()
		f.repo.On("Create", ctx, mock.Anything, []int64{1, 2}).
			Return(nil, errors.ErrPersistenceFailed.Wrap(stderrors.New("connection reset"))).Once()
		f.storage.On("Delete", mock.Anything, ref).Return(nil).Once()

		resp, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		assert.Nil(t, resp)
		assert.True(t, stderrors.Is(err, errors.ErrPersistenceFailed))
		f.storage.AssertExpectations(t)
		f.cache.AssertNotCalled(t, "SetPoint", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failed cleanup does not mask persistence error", func(t *testing.T) {
		f := newPointFixture(t, true)
		ref := "bb22-loja.png"

		f.storage.On("Store", ctx, pngBytes, "loja.png").Return(ref, nil).Once()
		f.repo.On("Create", ctx, mock.Anything, mock.Anything).
			Return(nil, errors.ErrPersistenceFailed).Once()
		f.storage.On("Delete", mock.Anything, ref).Return(stderrors.New("disk gone")).Once()

		_, err := f.uc.CreatePoint(ctx, validRequest(), &dto.ImageUpload{Filename: "loja.png", Data: pngBytes})

		assert.True(t, stderrors.Is(err, errors.ErrPersistenceFailed))
	})

	t.Run("cache failure is not surfaced", func(t *testing.T) {
		f := newPointFixture(t, true)

		f.repo.On("Create", ctx, mock.Anything, []int64{1, 2}).
			Return(&domain.Point{ID: 5, CategoryIDs: []int64{1, 2}}, nil).Once()
		f.cache.On("SetPoint", ctx, mock.Anything, time.Minute).Return(stderrors.New("redis down")).Once()

		resp, err := f.uc.CreatePoint(ctx, validRequest(), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})
}

func TestPointUseCase_GetPoint(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newPointFixture(t, true)

		f.cache.On("GetPoint", ctx, int64(7)).
			Return(&domain.Point{ID: 7, Name: "Cached", CategoryIDs: []int64{3}}, nil).Once()

		resp, err := f.uc.GetPoint(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Cached", resp.Name)
		assert.Equal(t, int64(3), resp.Items[0].ID)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads repository and fills cache", func(t *testing.T) {
		f := newPointFixture(t, true)
		point := &domain.Point{ID: 8, Name: "Fresh", CategoryIDs: []int64{1}}

		f.cache.On("GetPoint", ctx, int64(8)).Return(nil, nil).Once()
		f.repo.On("GetByID", ctx, int64(8)).Return(point, nil).Once()
		f.cache.On("SetPoint", ctx, point, time.Minute).Return(nil).Once()

		resp, err := f.uc.GetPoint(ctx, 8)

		require.NoError(t, err)
		assert.Equal(t, "Fresh", resp.Name)
		f.cache.AssertExpectations(t)
	})

	t.Run("cache error falls back to repository", func(t *testing.T) {
		f := newPointFixture(t, true)
		point := &domain.Point{ID: 9, CategoryIDs: []int64{2}}

		f.cache.On("GetPoint", ctx, int64(9)).Return(nil, stderrors.New("timeout")).Once()
		f.repo.On("GetByID", ctx, int64(9)).Return(point, nil).Once()
		f.cache.On("SetPoint", ctx, point, time.Minute).Return(nil).Once()

		resp, err := f.uc.GetPoint(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("GetByID", ctx, int64(404)).Return(nil, errors.ErrPointNotFound).Once()

		resp, err := f.uc.GetPoint(ctx, 404)

		assert.Nil(t, resp)
		assert.True(t, stderrors.Is(err, errors.ErrPointNotFound))
	})

	t.Run("idempotent read", func(t *testing.T) {
		f := newPointFixture(t, false)
		createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

		f.repo.On("GetByID", ctx, int64(3)).
			Return(&domain.Point{ID: 3, CreatedAt: createdAt, CategoryIDs: []int64{1, 3}}, nil).Twice()

		first, err := f.uc.GetPoint(ctx, 3)
		require.NoError(t, err)
		second, err := f.uc.GetPoint(ctx, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("non-positive id", func(t *testing.T) {
		f := newPointFixture(t, false)

		_, err := f.uc.GetPoint(ctx, 0)

		assert.True(t, stderrors.Is(err, errors.ErrValidationFailed))
	})
}

func TestPointUseCase_QueryPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("builds filter and presents each point", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Query", ctx, domain.PointFilter{
			City:        "Recife",
			UF:          "PE",
			CategoryIDs: []int64{1, 3},
		}).Return([]*domain.Point{
			{ID: 1, CategoryIDs: []int64{1, 2}},
			{ID: 2, CategoryIDs: []int64{3}},
		}, nil).Once()

		resp, err := f.uc.QueryPoints(ctx, dto.ListPointsRequest{City: "Recife", UF: "PE", Items: "3,1"})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Len(t, resp[0].Items, 2)
		assert.Equal(t, int64(3), resp[1].Items[0].ID)
	})

	t.Run("empty filter", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Query", ctx, domain.PointFilter{CategoryIDs: []int64{}}).
			Return([]*domain.Point{}, nil).Once()

		resp, err := f.uc.QueryPoints(ctx, dto.ListPointsRequest{})

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("malformed items", func(t *testing.T) {
		f := newPointFixture(t, false)

		_, err := f.uc.QueryPoints(ctx, dto.ListPointsRequest{Items: "1;2"})

		assert.Equal(t, map[string]string{"items": "list"}, validationFields(t, err))
		f.repo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newPointFixture(t, false)

		f.repo.On("Query", ctx, mock.Anything).Return(nil, errors.ErrDatabaseError).Once()

		_, err := f.uc.QueryPoints(ctx, dto.ListPointsRequest{UF: "SP"})

		assert.True(t, stderrors.Is(err, errors.ErrDatabaseError))
	})
}

func TestPointUseCase_MisconfiguredPresenter(t *testing.T) {
	categoryRepo := &MockCategoryRepository{}
	categoryRepo.On("List", mock.Anything).Return(seedCategories, nil)
	catalog := usecase.NewCategoryCatalog(categoryRepo, zap.NewNop())
	require.NoError(t, catalog.Load(context.Background()))

	repo := &MockPointRepository{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Point{ID: 1, CategoryIDs: []int64{1}}, nil)

	uc := usecase.NewPointUseCase(repo, nil, &MockImageStorage{}, catalog,
		dto.NewPresenter(""), validator.ImagePolicy{}, zap.NewNop(), time.Minute)

	_, err := uc.GetPoint(context.Background(), 1)

	assert.True(t, stderrors.Is(err, errors.ErrConfiguration))
}
