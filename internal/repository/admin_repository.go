package repository

import (
	"context"

	"gorm.io/gorm"

	"eduportal/internal/model"
)

// AdminRepository defines admin persistence operations.
type AdminRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&n).Error
	return n, err
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdatePassword overwrites the hash for email and returns the number of matched rows.
func (r *adminRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("email = ?", email).
		Update("password", passwordHash)
	return res.RowsAffected, res.Error
}
