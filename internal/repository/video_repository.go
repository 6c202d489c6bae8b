package repository

import (
	"context"

	"gorm.io/gorm"

	"eduportal/internal/model"
)

// VideoRepository defines video persistence operations.
type VideoRepository interface {
	ListPublished(ctx context.Context, filter ContentFilter, page Page) ([]model.VideoView, error)
	CountPublished(ctx context.Context, filter ContentFilter) (int64, error)
	FindPublishedByID(ctx context.Context, id uint) (*model.VideoView, error)
	LatestPublished(ctx context.Context, limit int) ([]model.VideoView, error)

	ListAll(ctx context.Context) ([]model.VideoView, error)
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, video *model.Video, replaceVideo, replaceThumbnail bool) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (total int64, published int64, err error)
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new video repository.
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("videos AS v").
		Select("v.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON c.id = v.category_id")
}

func (r *videoRepository) ListPublished(ctx context.Context, filter ContentFilter, page Page) ([]model.VideoView, error) {
	var rows []model.VideoView
	err := r.viewQuery(ctx).
		Scopes(filter.videoScope, page.scope).
		Order("v.created_at DESC, v.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *videoRepository) CountPublished(ctx context.Context, filter ContentFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("videos AS v").
		Scopes(filter.videoScope).
		Count(&total).Error
	return total, err
}

func (r *videoRepository) FindPublishedByID(ctx context.Context, id uint) (*model.VideoView, error) {
	var row model.VideoView
	err := r.viewQuery(ctx).
		Scopes(ContentFilter{}.videoScope).
		Where("v.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *videoRepository) LatestPublished(ctx context.Context, limit int) ([]model.VideoView, error) {
	var rows []model.VideoView
	err := r.viewQuery(ctx).
		Scopes(ContentFilter{}.videoScope).
		Order("v.created_at DESC, v.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *videoRepository) ListAll(ctx context.Context) ([]model.VideoView, error) {
	var rows []model.VideoView
	if err := r.viewQuery(ctx).Order("v.created_at DESC, v.id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// Update overwrites the editable columns; the two file path columns are only
// written when flagged.
func (r *videoRepository) Update(ctx context.Context, video *model.Video, replaceVideo, replaceThumbnail bool) error {
	fields := map[string]interface{}{
		"title":       video.Title,
		"description": video.Description,
		"duration":    video.Duration,
		"category_id": video.CategoryID,
		"status":      video.Status,
	}
	if replaceVideo {
		fields["video_url"] = video.VideoURL
	}
	if replaceThumbnail {
		fields["thumbnail"] = video.Thumbnail
	}
	return r.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", video.ID).
		Updates(fields).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Video{}, id).Error
}

func (r *videoRepository) Count(ctx context.Context) (int64, int64, error) {
	var total, published int64
	if err := r.db.WithContext(ctx).Model(&model.Video{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Video{}).
		Where("status = ?", model.StatusPublished).
		Count(&published).Error; err != nil {
		return 0, 0, err
	}
	return total, published, nil
}
