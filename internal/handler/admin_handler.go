package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"eduportal/internal/auth"
	"eduportal/internal/service"
)

// AdminHandler handles admin bootstrap and authentication endpoints.
type AdminHandler struct {
	admins service.AdminService
	logger *logrus.Logger
}

// NewAdminHandler creates a new admin auth handler.
func NewAdminHandler(admins service.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{admins: admins, logger: logger}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ResetPasswordRequest represents an operator password reset.
type ResetPasswordRequest struct {
	Email       string `json:"email" form:"email" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required"`
}

// AdminInfo is the public part of an admin account.
type AdminInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

// CheckResponse reports whether any admin exists.
type CheckResponse struct {
	AdminExists bool  `json:"admin_exists"`
	Count       int64 `json:"count"`
}

// InitResponse is returned by Init. Email and TemporaryPassword are only set
// when an admin was created.
type InitResponse struct {
	Message           string `json:"message"`
	Count             int64  `json:"count,omitempty"`
	Email             string `json:"email,omitempty"`
	TemporaryPassword string `json:"temporary_password,omitempty"`
}

// Check godoc
// @Summary Report whether an admin exists
// @Tags admin-auth
// @Produce json
// @Success 200 {object} CheckResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/check [get]
func (h *AdminHandler) Check(c echo.Context) error {
	count, err := h.admins.Check(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "admin_check", err)
	}
	return c.JSON(http.StatusOK, CheckResponse{AdminExists: count > 0, Count: count})
}

// Init godoc
// @Summary Create the default admin if none exists
// @Tags admin-auth
// @Produce json
// @Success 200 {object} InitResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/init [post]
func (h *AdminHandler) Init(c echo.Context) error {
	result, err := h.admins.Initialize(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "admin_init", err)
	}
	if !result.Created {
		return c.JSON(http.StatusOK, InitResponse{Message: "Admin already exists", Count: result.Count})
	}

	h.logger.WithField("email", result.Email).Info("default admin created")
	return c.JSON(http.StatusOK, InitResponse{
		Message:           "Admin created successfully",
		Email:             result.Email,
		TemporaryPassword: result.TemporaryPassword,
	})
}

// Login godoc
// @Summary Admin login
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Email and password are required")
	}

	token, admin, err := h.admins.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return adminError(c, h.logger, "admin_login", err)
	}
	return c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Admin: AdminInfo{ID: admin.ID, Email: admin.Email, Name: admin.Name},
	})
}

// ResetPassword godoc
// @Summary Reset an admin password (operator use)
// @Description Not behind the bearer gate; restrict at the network level.
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/reset-password [post]
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Email and new password are required")
	}

	if err := h.admins.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return adminError(c, h.logger, "admin_reset_password", err)
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID(c),
		"email":      req.Email,
		"remote_ip":  c.RealIP(),
	}).Warn("admin password reset through unauthenticated endpoint")
	return c.JSON(http.StatusOK, MessageResponse{Message: "Password reset successfully"})
}

// Me godoc
// @Summary Current admin identity from the bearer token
// @Tags admin-auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]AdminInfo
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/me [get]
func (h *AdminHandler) Me(c echo.Context) error {
	claims, found := auth.ClaimsFrom(c)
	if !found {
		return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	}
	return c.JSON(http.StatusOK, map[string]AdminInfo{
		"admin": {ID: claims.AdminID, Email: claims.Email},
	})
}
