package repository

import (
	"context"

	"gorm.io/gorm"

	"eduportal/internal/model"
)

// MaterialRepository defines material persistence operations.
type MaterialRepository interface {
	// Public reads: published rows only.
	ListPublished(ctx context.Context, filter ContentFilter, page Page) ([]model.MaterialView, error)
	CountPublished(ctx context.Context, filter ContentFilter) (int64, error)
	FindPublishedByID(ctx context.Context, id uint) (*model.MaterialView, error)
	LatestPublished(ctx context.Context, limit int) ([]model.MaterialView, error)
	ListAuthors(ctx context.Context) ([]model.AuthorSummary, error)

	// Admin operations: every status.
	ListAll(ctx context.Context) ([]model.MaterialView, error)
	Create(ctx context.Context, material *model.Material) error
	Update(ctx context.Context, material *model.Material, replaceImage bool) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (total int64, published int64, err error)
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("materials AS m").
		Select("m.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON c.id = m.category_id")
}

// ListPublished returns one page of published materials matching filter, newest first.
func (r *materialRepository) ListPublished(ctx context.Context, filter ContentFilter, page Page) ([]model.MaterialView, error) {
	var rows []model.MaterialView
	err := r.viewQuery(ctx).
		Scopes(filter.materialScope, page.scope).
		Order("m.created_at DESC, m.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountPublished counts the rows ListPublished pages over.
func (r *materialRepository) CountPublished(ctx context.Context, filter ContentFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("materials AS m").
		Scopes(filter.materialScope).
		Count(&total).Error
	return total, err
}

// FindPublishedByID finds a published material by ID.
func (r *materialRepository) FindPublishedByID(ctx context.Context, id uint) (*model.MaterialView, error) {
	var row model.MaterialView
	err := r.viewQuery(ctx).
		Scopes(ContentFilter{}.materialScope).
		Where("m.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// LatestPublished returns the limit most recent published materials.
func (r *materialRepository) LatestPublished(ctx context.Context, limit int) ([]model.MaterialView, error) {
	var rows []model.MaterialView
	err := r.viewQuery(ctx).
		Scopes(ContentFilter{}.materialScope).
		Order("m.created_at DESC, m.id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAuthors aggregates published materials by non-empty author.
func (r *materialRepository) ListAuthors(ctx context.Context) ([]model.AuthorSummary, error) {
	var rows []model.AuthorSummary
	err := r.db.WithContext(ctx).Table("materials").
		Select("author, COUNT(*) AS material_count, MAX(created_at) AS latest_material").
		Where("status = ? AND author IS NOT NULL AND author <> ''", model.StatusPublished).
		Group("author").
		Order("material_count DESC, author ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every material with its category name, newest first.
func (r *materialRepository) ListAll(ctx context.Context) ([]model.MaterialView, error) {
	var rows []model.MaterialView
	if err := r.viewQuery(ctx).Order("m.created_at DESC, m.id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create creates a new material.
func (r *materialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// Update overwrites every editable column in one statement. The image column
// is only written when replaceImage is set.
func (r *materialRepository) Update(ctx context.Context, material *model.Material, replaceImage bool) error {
	fields := map[string]interface{}{
		"title":       material.Title,
		"content":     material.Content,
		"author":      material.Author,
		"category_id": material.CategoryID,
		"status":      material.Status,
	}
	if replaceImage {
		fields["image"] = material.Image
	}
	return r.db.WithContext(ctx).Model(&model.Material{}).
		Where("id = ?", material.ID).
		Updates(fields).Error
}

// Delete removes a material. Deleting a missing id is not an error.
func (r *materialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Material{}, id).Error
}

// Count returns the total and published number of materials.
func (r *materialRepository) Count(ctx context.Context) (int64, int64, error) {
	var total, published int64
	if err := r.db.WithContext(ctx).Model(&model.Material{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Material{}).
		Where("status = ?", model.StatusPublished).
		Count(&published).Error; err != nil {
		return 0, 0, err
	}
	return total, published, nil
}
