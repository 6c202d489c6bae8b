// Package servicemock provides testify mocks of the service interfaces for
// handler and router tests.
package servicemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eduportal/internal/model"
	"eduportal/internal/repository"
	"eduportal/internal/service"
)

// ContentService is a mock implementation of service.ContentService.
type ContentService struct {
	mock.Mock
}

func (m *ContentService) ListCategories(ctx context.Context) ([]model.CategoryWithCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryWithCounts), args.Error(1)
}

func (m *ContentService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *ContentService) ListMaterials(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.MaterialView, model.Pagination, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, model.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]model.MaterialView), args.Get(1).(model.Pagination), args.Error(2)
}

func (m *ContentService) GetMaterial(ctx context.Context, id uint) (*model.MaterialView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaterialView), args.Error(1)
}

func (m *ContentService) ListAuthors(ctx context.Context) ([]model.AuthorSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuthorSummary), args.Error(1)
}

func (m *ContentService) ListVideos(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.VideoView, model.Pagination, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, model.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]model.VideoView), args.Get(1).(model.Pagination), args.Error(2)
}

func (m *ContentService) GetVideo(ctx context.Context, id uint) (*model.VideoView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoView), args.Error(1)
}

func (m *ContentService) Search(ctx context.Context, q service.SearchQuery) (*service.SearchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

func (m *ContentService) Latest(ctx context.Context, limit int) (*service.LatestContent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LatestContent), args.Error(1)
}

// AdminService is a mock implementation of service.AdminService.
type AdminService struct {
	mock.Mock
}

func (m *AdminService) Check(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AdminService) Initialize(ctx context.Context) (*service.InitResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InitResult), args.Error(1)
}

func (m *AdminService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

func (m *AdminService) ResetPassword(ctx context.Context, email, newPassword string) error {
	args := m.Called(ctx, email, newPassword)
	return args.Error(0)
}

// CatalogService is a mock implementation of service.CatalogService.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *CatalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CatalogService) UpdateCategory(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatalogService) ListMaterials(ctx context.Context) ([]model.MaterialView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaterialView), args.Error(1)
}

func (m *CatalogService) CreateMaterial(ctx context.Context, material *model.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *CatalogService) UpdateMaterial(ctx context.Context, material *model.Material, replaceImage bool) error {
	args := m.Called(ctx, material, replaceImage)
	return args.Error(0)
}

func (m *CatalogService) DeleteMaterial(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatalogService) ListVideos(ctx context.Context) ([]model.VideoView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VideoView), args.Error(1)
}

func (m *CatalogService) CreateVideo(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *CatalogService) UpdateVideo(ctx context.Context, video *model.Video, replaceVideo, replaceThumbnail bool) error {
	args := m.Called(ctx, video, replaceVideo, replaceThumbnail)
	return args.Error(0)
}

func (m *CatalogService) DeleteVideo(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatalogService) Stats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}

var (
	_ service.ContentService = (*ContentService)(nil)
	_ service.AdminService   = (*AdminService)(nil)
	_ service.CatalogService = (*CatalogService)(nil)
)
