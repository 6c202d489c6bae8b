package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eduportal/internal/auth"
	apperrors "eduportal/internal/errors"
	"eduportal/internal/model"
	"eduportal/internal/repository"
)

// BcryptCost is the work factor for admin password hashes.
const BcryptCost = 12

const defaultAdminName = "Administrator"

// InitResult reports the outcome of Initialize. TemporaryPassword is only set
// when an admin was created.
type InitResult struct {
	Created           bool
	Count             int64
	Email             string
	TemporaryPassword string
}

// AdminService handles admin bootstrap and authentication.
type AdminService interface {
	Check(ctx context.Context) (int64, error)
	Initialize(ctx context.Context) (*InitResult, error)
	Login(ctx context.Context, email, password string) (string, *model.Admin, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type adminService struct {
	adminRepo       repository.AdminRepository
	jwtService      *auth.JWTService
	defaultEmail    string
	defaultPassword string
}

// NewAdminService creates a new admin service. The default credentials are
// only used by Initialize.
func NewAdminService(adminRepo repository.AdminRepository, jwtService *auth.JWTService, defaultEmail, defaultPassword string) AdminService {
	return &adminService{
		adminRepo:       adminRepo,
		jwtService:      jwtService,
		defaultEmail:    defaultEmail,
		defaultPassword: defaultPassword,
	}
}

// HashPassword hashes a plaintext password with BcryptCost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Check returns the number of admins.
func (s *adminService) Check(ctx context.Context) (int64, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

// Initialize creates the default admin unless any admin already exists.
func (s *adminService) Initialize(ctx context.Context) (*InitResult, error) {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return &InitResult{Count: count}, nil
	}

	hashed, err := HashPassword(s.defaultPassword)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{
		Email:        s.defaultEmail,
		PasswordHash: hashed,
		Name:         defaultAdminName,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return &InitResult{
		Created:           true,
		Count:             1,
		Email:             admin.Email,
		TemporaryPassword: s.defaultPassword,
	}, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and wrong
// password fail identically.
func (s *adminService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, apperrors.NewValidationError("Email and password are required")
	}

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, admin, nil
}

// ResetPassword overwrites the hash of an existing admin.
func (s *adminService) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || newPassword == "" {
		return apperrors.NewValidationError("Email and new password are required")
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	affected, err := s.adminRepo.UpdatePassword(ctx, email, hashed)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
