package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"eduportal/internal/cache"
	apperrors "eduportal/internal/errors"
	"eduportal/internal/model"
	"eduportal/internal/repository"
)

// Cache keys for the public aggregates. Admin writes drop both.
const (
	CacheKeyCategories = "content:categories"
	CacheKeyAuthors    = "content:authors"
)

// DefaultLatestLimit is used when the caller does not ask for a specific count.
const DefaultLatestLimit = 5

// Search types accepted by Search. An empty type searches both.
const (
	SearchTypeMaterials = "materials"
	SearchTypeVideos    = "videos"
)

// SearchQuery is a validated-on-use public search request.
type SearchQuery struct {
	Query      string
	Type       string
	CategoryID *uint
	Page       repository.Page
}

// SearchResult holds both result kinds; a kind that was not searched is empty.
type SearchResult struct {
	Materials []model.MaterialView `json:"materials"`
	Videos    []model.VideoView    `json:"videos"`
}

// LatestContent holds the newest published materials and videos.
type LatestContent struct {
	Materials []model.LatestMaterial `json:"materials"`
	Videos    []model.LatestVideo    `json:"videos"`
}

// ContentService serves the public read-only API. Only published rows are visible.
type ContentService interface {
	ListCategories(ctx context.Context) ([]model.CategoryWithCounts, error)
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	ListMaterials(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.MaterialView, model.Pagination, error)
	GetMaterial(ctx context.Context, id uint) (*model.MaterialView, error)
	ListAuthors(ctx context.Context) ([]model.AuthorSummary, error)
	ListVideos(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.VideoView, model.Pagination, error)
	GetVideo(ctx context.Context, id uint) (*model.VideoView, error)
	Search(ctx context.Context, q SearchQuery) (*SearchResult, error)
	Latest(ctx context.Context, limit int) (*LatestContent, error)
}

type contentService struct {
	categoryRepo repository.CategoryRepository
	materialRepo repository.MaterialRepository
	videoRepo    repository.VideoRepository
	cache        *cache.Client
	cacheTTL     time.Duration
}

// NewContentService creates the public content service. cacheClient may be nil.
func NewContentService(
	categoryRepo repository.CategoryRepository,
	materialRepo repository.MaterialRepository,
	videoRepo repository.VideoRepository,
	cacheClient *cache.Client,
	cacheTTL time.Duration,
) ContentService {
	return &contentService{
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
		videoRepo:    videoRepo,
		cache:        cacheClient,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories returns every category with published content counts, ordered by name.
func (s *contentService) ListCategories(ctx context.Context) ([]model.CategoryWithCounts, error) {
	var cached []model.CategoryWithCounts
	if s.cache.GetJSON(ctx, CacheKeyCategories, &cached) {
		return cached, nil
	}

	rows, err := s.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if rows == nil {
		rows = []model.CategoryWithCounts{}
	}
	s.cache.SetJSON(ctx, CacheKeyCategories, rows, s.cacheTTL)
	return rows, nil
}

func (s *contentService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "get category")
	}
	return category, nil
}

// ListMaterials pages over published materials. The count uses the same filter as the rows.
func (s *contentService) ListMaterials(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.MaterialView, model.Pagination, error) {
	rows, err := s.materialRepo.ListPublished(ctx, filter, page)
	if err != nil {
		return nil, model.Pagination{}, fmt.Errorf("list materials: %w", err)
	}
	total, err := s.materialRepo.CountPublished(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, fmt.Errorf("count materials: %w", err)
	}
	if rows == nil {
		rows = []model.MaterialView{}
	}
	return rows, model.NewPagination(total, page.Page, page.Limit), nil
}

func (s *contentService) GetMaterial(ctx context.Context, id uint) (*model.MaterialView, error) {
	material, err := s.materialRepo.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "get material")
	}
	return material, nil
}

func (s *contentService) ListAuthors(ctx context.Context) ([]model.AuthorSummary, error) {
	var cached []model.AuthorSummary
	if s.cache.GetJSON(ctx, CacheKeyAuthors, &cached) {
		return cached, nil
	}

	rows, err := s.materialRepo.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if rows == nil {
		rows = []model.AuthorSummary{}
	}
	s.cache.SetJSON(ctx, CacheKeyAuthors, rows, s.cacheTTL)
	return rows, nil
}

// ListVideos pages over published videos. Author filtering does not apply.
func (s *contentService) ListVideos(ctx context.Context, filter repository.ContentFilter, page repository.Page) ([]model.VideoView, model.Pagination, error) {
	rows, err := s.videoRepo.ListPublished(ctx, filter, page)
	if err != nil {
		return nil, model.Pagination{}, fmt.Errorf("list videos: %w", err)
	}
	total, err := s.videoRepo.CountPublished(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, fmt.Errorf("count videos: %w", err)
	}
	if rows == nil {
		rows = []model.VideoView{}
	}
	return rows, model.NewPagination(total, page.Page, page.Limit), nil
}

func (s *contentService) GetVideo(ctx context.Context, id uint) (*model.VideoView, error) {
	video, err := s.videoRepo.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "get video")
	}
	return video, nil
}

// Search matches q against materials (title, content, author) and videos
// (title, description). Each kind is paged independently with the same page.
func (s *contentService) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		return nil, apperrors.NewValidationError("Search query is required")
	}
	switch q.Type {
	case "", SearchTypeMaterials, SearchTypeVideos:
	default:
		return nil, apperrors.NewValidationError("Type must be materials or videos")
	}

	filter := repository.ContentFilter{CategoryID: q.CategoryID, Query: query}
	result := &SearchResult{
		Materials: []model.MaterialView{},
		Videos:    []model.VideoView{},
	}

	if q.Type != SearchTypeVideos {
		materials, err := s.materialRepo.ListPublished(ctx, filter, q.Page)
		if err != nil {
			return nil, fmt.Errorf("search materials: %w", err)
		}
		if materials != nil {
			result.Materials = materials
		}
	}
	if q.Type != SearchTypeMaterials {
		videos, err := s.videoRepo.ListPublished(ctx, filter, q.Page)
		if err != nil {
			return nil, fmt.Errorf("search videos: %w", err)
		}
		if videos != nil {
			result.Videos = videos
		}
	}
	return result, nil
}

// Latest returns the limit newest published materials and videos, each tagged
// with its content type.
func (s *contentService) Latest(ctx context.Context, limit int) (*LatestContent, error) {
	if limit < 1 {
		limit = DefaultLatestLimit
	}

	materials, err := s.materialRepo.LatestPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("latest materials: %w", err)
	}
	videos, err := s.videoRepo.LatestPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("latest videos: %w", err)
	}

	out := &LatestContent{
		Materials: make([]model.LatestMaterial, 0, len(materials)),
		Videos:    make([]model.LatestVideo, 0, len(videos)),
	}
	for _, m := range materials {
		out.Materials = append(out.Materials, model.LatestMaterial{MaterialView: m, ContentType: model.ContentTypeMaterial})
	}
	for _, v := range videos {
		out.Videos = append(out.Videos, model.LatestVideo{VideoView: v, ContentType: model.ContentTypeVideo})
	}
	return out, nil
}

// notFound maps a missing row to ErrNotFound and wraps anything else as a store failure.
func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
