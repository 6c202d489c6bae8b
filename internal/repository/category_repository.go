package repository

import (
	"context"

	"gorm.io/gorm"

	"eduportal/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ListWithCounts(ctx context.Context) ([]model.CategoryWithCounts, error)
	Count(ctx context.Context) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update overwrites the editable columns of a category.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
		}).Error
}

// Delete removes a category. Referencing materials and videos keep their
// rows; the foreign key nulls their category_id.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories, newest first.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListWithCounts returns every category, including empty ones, with the
// number of distinct published materials and videos, ordered by name.
func (r *categoryRepository) ListWithCounts(ctx context.Context) ([]model.CategoryWithCounts, error) {
	var rows []model.CategoryWithCounts
	err := r.db.WithContext(ctx).Table("categories AS c").
		Select("c.*, COUNT(DISTINCT m.id) AS material_count, COUNT(DISTINCT v.id) AS video_count").
		Joins("LEFT JOIN materials m ON m.category_id = c.id AND m.status = ?", model.StatusPublished).
		Joins("LEFT JOIN videos v ON v.category_id = c.id AND v.status = ?", model.StatusPublished).
		Group("c.id").
		Order("c.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&n).Error
	return n, err
}
