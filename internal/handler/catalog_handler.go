package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"eduportal/internal/model"
	"eduportal/internal/service"
	"eduportal/internal/upload"
)

// CatalogHandler serves the admin CRUD routes. All routes sit behind the bearer gate.
type CatalogHandler struct {
	catalog service.CatalogService
	uploads *upload.Store
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new admin catalog handler.
func NewCatalogHandler(catalog service.CatalogService, uploads *upload.Store, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, uploads: uploads, logger: logger}
}

// CategoryRequest is the category create/update body.
type CategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

// MaterialRequest is the material create/update body. The image arrives as
// the multipart file field "image".
type MaterialRequest struct {
	Title      string      `json:"title" form:"title" validate:"required"`
	Content    string      `json:"content" form:"content" validate:"required"`
	Author     string      `json:"author" form:"author"`
	CategoryID optionalInt `json:"category_id" form:"category_id" swaggertype:"integer"`
	Status     string      `json:"status" form:"status" validate:"omitempty,oneof=published draft"`
}

// VideoRequest is the video create/update body. The video and thumbnail
// arrive as the multipart file fields "video" and "thumbnail".
type VideoRequest struct {
	Title       string      `json:"title" form:"title" validate:"required"`
	Description string      `json:"description" form:"description"`
	VideoURL    string      `json:"video_url" form:"video_url"`
	Duration    optionalInt `json:"duration" form:"duration" swaggertype:"integer"`
	CategoryID  optionalInt `json:"category_id" form:"category_id" swaggertype:"integer"`
	Status      string      `json:"status" form:"status" validate:"omitempty,oneof=published draft"`
}

func (r MaterialRequest) toModel() *model.Material {
	return &model.Material{
		Title:      r.Title,
		Content:    r.Content,
		Author:     nullable(r.Author),
		CategoryID: r.CategoryID.id(),
		Status:     model.ContentStatus(r.Status),
	}
}

func (r VideoRequest) toModel() *model.Video {
	return &model.Video{
		Title:       r.Title,
		Description: nullable(r.Description),
		VideoURL:    strings.TrimSpace(r.VideoURL),
		Duration:    r.Duration.intOr(0),
		CategoryID:  r.CategoryID.id(),
		Status:      model.ContentStatus(r.Status),
	}
}

// Stats godoc
// @Summary Entity counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Stats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *CatalogHandler) Stats(c echo.Context) error {
	stats, err := h.catalog.Stats(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListCategories godoc
// @Summary List all categories
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Category
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	rows, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "admin_list_categories", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Name is required")
	}

	category := &model.Category{Name: req.Name, Description: nullable(req.Description)}
	if err := h.catalog.CreateCategory(c.Request().Context(), category); err != nil {
		return adminError(c, h.logger, "create_category", err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: category.ID, Message: "Category created successfully"})
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Name is required")
	}

	category := &model.Category{ID: id, Name: req.Name, Description: nullable(req.Description)}
	if err := h.catalog.UpdateCategory(c.Request().Context(), category); err != nil {
		return adminError(c, h.logger, "update_category", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Category updated successfully"})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Materials and videos of the category are kept with no category.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	if err := h.catalog.DeleteCategory(c.Request().Context(), id); err != nil {
		return adminError(c, h.logger, "delete_category", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// ListMaterials godoc
// @Summary List all materials, drafts included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.MaterialView
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/materials [get]
func (h *CatalogHandler) ListMaterials(c echo.Context) error {
	rows, err := h.catalog.ListMaterials(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "admin_list_materials", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateMaterial godoc
// @Summary Create a material
// @Tags admin
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body MaterialRequest true "Material"
// @Param image formData file false "Image"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/materials [post]
func (h *CatalogHandler) CreateMaterial(c echo.Context) error {
	var req MaterialRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(materialValidationMessage(req))
	}

	batch, err := receiveUploads(c, h.uploads, h.logger, upload.FieldImage)
	if err != nil {
		return adminError(c, h.logger, "create_material_upload", err)
	}

	material := req.toModel()
	if p, found := batch.path(upload.FieldImage); found {
		material.Image = &p
	}
	if err := h.catalog.CreateMaterial(c.Request().Context(), material); err != nil {
		batch.discard()
		return adminError(c, h.logger, "create_material", err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: material.ID, Message: "Material created successfully"})
}

// UpdateMaterial godoc
// @Summary Update a material
// @Description Every field is overwritten; the image is only replaced when a new file is uploaded.
// @Tags admin
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param request body MaterialRequest true "Material"
// @Param image formData file false "Image"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/materials/{id} [put]
func (h *CatalogHandler) UpdateMaterial(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	var req MaterialRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(materialValidationMessage(req))
	}

	batch, err := receiveUploads(c, h.uploads, h.logger, upload.FieldImage)
	if err != nil {
		return adminError(c, h.logger, "update_material_upload", err)
	}

	material := req.toModel()
	material.ID = id
	p, replaceImage := batch.path(upload.FieldImage)
	if replaceImage {
		material.Image = &p
	}
	if err := h.catalog.UpdateMaterial(c.Request().Context(), material, replaceImage); err != nil {
		batch.discard()
		return adminError(c, h.logger, "update_material", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Material updated successfully"})
}

// DeleteMaterial godoc
// @Summary Delete a material
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/materials/{id} [delete]
func (h *CatalogHandler) DeleteMaterial(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	if err := h.catalog.DeleteMaterial(c.Request().Context(), id); err != nil {
		return adminError(c, h.logger, "delete_material", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Material deleted successfully"})
}

// ListVideos godoc
// @Summary List all videos, drafts included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.VideoView
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/videos [get]
func (h *CatalogHandler) ListVideos(c echo.Context) error {
	rows, err := h.catalog.ListVideos(c.Request().Context())
	if err != nil {
		return adminError(c, h.logger, "admin_list_videos", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateVideo godoc
// @Summary Create a video
// @Description Either a video file or video_url is required.
// @Tags admin
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body VideoRequest true "Video"
// @Param video formData file false "Video file"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/videos [post]
func (h *CatalogHandler) CreateVideo(c echo.Context) error {
	var req VideoRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(videoValidationMessage(req))
	}

	batch, err := receiveUploads(c, h.uploads, h.logger, upload.FieldVideo, upload.FieldThumbnail)
	if err != nil {
		return adminError(c, h.logger, "create_video_upload", err)
	}

	video := req.toModel()
	if p, found := batch.path(upload.FieldVideo); found {
		video.VideoURL = p
	}
	if p, found := batch.path(upload.FieldThumbnail); found {
		video.Thumbnail = &p
	}
	if err := h.catalog.CreateVideo(c.Request().Context(), video); err != nil {
		batch.discard()
		return adminError(c, h.logger, "create_video", err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: video.ID, Message: "Video created successfully"})
}

// UpdateVideo godoc
// @Summary Update a video
// @Description Every field is overwritten. The video path changes only with a new upload or a non-empty video_url; the thumbnail only with a new upload.
// @Tags admin
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Video ID"
// @Param request body VideoRequest true "Video"
// @Param video formData file false "Video file"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/videos/{id} [put]
func (h *CatalogHandler) UpdateVideo(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	var req VideoRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(videoValidationMessage(req))
	}

	batch, err := receiveUploads(c, h.uploads, h.logger, upload.FieldVideo, upload.FieldThumbnail)
	if err != nil {
		return adminError(c, h.logger, "update_video_upload", err)
	}

	video := req.toModel()
	video.ID = id
	replaceVideo := video.VideoURL != ""
	if p, found := batch.path(upload.FieldVideo); found {
		video.VideoURL = p
		replaceVideo = true
	}
	p, replaceThumbnail := batch.path(upload.FieldThumbnail)
	if replaceThumbnail {
		video.Thumbnail = &p
	}
	if err := h.catalog.UpdateVideo(c.Request().Context(), video, replaceVideo, replaceThumbnail); err != nil {
		batch.discard()
		return adminError(c, h.logger, "update_video", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Video updated successfully"})
}

// DeleteVideo godoc
// @Summary Delete a video
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Video ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/videos/{id} [delete]
func (h *CatalogHandler) DeleteVideo(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return badRequest("Invalid id")
	}
	if err := h.catalog.DeleteVideo(c.Request().Context(), id); err != nil {
		return adminError(c, h.logger, "delete_video", err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Video deleted successfully"})
}

func materialValidationMessage(req MaterialRequest) string {
	if req.Title == "" || req.Content == "" {
		return "Title and content are required"
	}
	return "Status must be published or draft"
}

func videoValidationMessage(req VideoRequest) string {
	if req.Title == "" {
		return "Title is required"
	}
	return "Status must be published or draft"
}
