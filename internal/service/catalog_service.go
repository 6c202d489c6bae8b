package service

import (
	"context"
	"fmt"
	"strings"

	"eduportal/internal/cache"
	apperrors "eduportal/internal/errors"
	"eduportal/internal/model"
	"eduportal/internal/repository"
)

// CatalogService is the admin CRUD surface over categories, materials and videos.
// Admin listings include drafts and are not paginated.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	ListMaterials(ctx context.Context) ([]model.MaterialView, error)
	CreateMaterial(ctx context.Context, material *model.Material) error
	UpdateMaterial(ctx context.Context, material *model.Material, replaceImage bool) error
	DeleteMaterial(ctx context.Context, id uint) error

	ListVideos(ctx context.Context) ([]model.VideoView, error)
	CreateVideo(ctx context.Context, video *model.Video) error
	UpdateVideo(ctx context.Context, video *model.Video, replaceVideo, replaceThumbnail bool) error
	DeleteVideo(ctx context.Context, id uint) error

	Stats(ctx context.Context) (*model.Stats, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	materialRepo repository.MaterialRepository
	videoRepo    repository.VideoRepository
	cache        *cache.Client
}

// NewCatalogService creates the admin catalog service. cacheClient may be nil.
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	materialRepo repository.MaterialRepository,
	videoRepo repository.VideoRepository,
	cacheClient *cache.Client,
) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
		videoRepo:    videoRepo,
		cache:        cacheClient,
	}
}

// invalidate drops the public aggregates after any successful write.
func (s *catalogService) invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, CacheKeyCategories, CacheKeyAuthors)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if rows == nil {
		rows = []model.Category{}
	}
	return rows, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateCategory overwrites name and description. A missing id is not an error.
func (s *catalogService) UpdateCategory(ctx context.Context, category *model.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// DeleteCategory removes the category; referencing content is kept uncategorised.
func (s *catalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) ListMaterials(ctx context.Context) ([]model.MaterialView, error) {
	rows, err := s.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	if rows == nil {
		rows = []model.MaterialView{}
	}
	return rows, nil
}

func (s *catalogService) CreateMaterial(ctx context.Context, material *model.Material) error {
	if err := validateMaterial(material); err != nil {
		return err
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateMaterial overwrites every editable column. The image path is only
// written when replaceImage is set.
func (s *catalogService) UpdateMaterial(ctx context.Context, material *model.Material, replaceImage bool) error {
	if err := validateMaterial(material); err != nil {
		return err
	}
	if err := s.materialRepo.Update(ctx, material, replaceImage); err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteMaterial(ctx context.Context, id uint) error {
	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) ListVideos(ctx context.Context) ([]model.VideoView, error) {
	rows, err := s.videoRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if rows == nil {
		rows = []model.VideoView{}
	}
	return rows, nil
}

// CreateVideo requires a video URL, either uploaded or given in the body.
func (s *catalogService) CreateVideo(ctx context.Context, video *model.Video) error {
	if err := validateVideo(video); err != nil {
		return err
	}
	if strings.TrimSpace(video.VideoURL) == "" {
		return apperrors.NewValidationError("Video file or video_url is required")
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// UpdateVideo overwrites every editable column. The video and thumbnail paths
// are only written when the matching flag is set.
func (s *catalogService) UpdateVideo(ctx context.Context, video *model.Video, replaceVideo, replaceThumbnail bool) error {
	if err := validateVideo(video); err != nil {
		return err
	}
	if err := s.videoRepo.Update(ctx, video, replaceVideo, replaceThumbnail); err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *catalogService) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// Stats returns entity counts for the dashboard.
func (s *catalogService) Stats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	var err error

	if stats.Categories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.Materials, stats.PublishedMaterials, err = s.materialRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count materials: %w", err)
	}
	if stats.Videos, stats.PublishedVideos, err = s.videoRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count videos: %w", err)
	}
	return &stats, nil
}

func validateCategory(category *model.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return apperrors.NewValidationError("Name is required")
	}
	return nil
}

func validateMaterial(material *model.Material) error {
	if strings.TrimSpace(material.Title) == "" || strings.TrimSpace(material.Content) == "" {
		return apperrors.NewValidationError("Title and content are required")
	}
	return normalizeStatus(&material.Status)
}

func validateVideo(video *model.Video) error {
	if strings.TrimSpace(video.Title) == "" {
		return apperrors.NewValidationError("Title is required")
	}
	if video.Duration < 0 {
		return apperrors.NewValidationError("Duration must not be negative")
	}
	return normalizeStatus(&video.Status)
}

// normalizeStatus defaults an omitted status to published.
func normalizeStatus(status *model.ContentStatus) error {
	if *status == "" {
		*status = model.StatusPublished
	}
	if !status.Valid() {
		return apperrors.NewValidationError("Status must be published or draft")
	}
	return nil
}
