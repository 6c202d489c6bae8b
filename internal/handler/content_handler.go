package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"eduportal/internal/repository"
	"eduportal/internal/service"
)

// ContentHandler serves the public read-only API.
type ContentHandler struct {
	content service.ContentService
	logger  *logrus.Logger
}

// NewContentHandler creates a new public content handler.
func NewContentHandler(content service.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{content: content, logger: logger}
}

// SearchResponse is the search envelope. Pagination carries only page and limit.
type SearchResponse struct {
	Success    bool                  `json:"success"`
	Data       *service.SearchResult `json:"data"`
	Query      string                `json:"query"`
	Pagination SearchPagination      `json:"pagination"`
}

// SearchPagination echoes the requested page.
type SearchPagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListCategories godoc
// @Summary List categories with published content counts
// @Tags public
// @Produce json
// @Success 200 {object} Envelope{data=[]model.CategoryWithCounts}
// @Failure 500 {object} Envelope
// @Router /categories [get]
func (h *ContentHandler) ListCategories(c echo.Context) error {
	rows, err := h.content.ListCategories(c.Request().Context())
	if err != nil {
		return publicError(c, h.logger, "list_categories", err, "")
	}
	return ok(c, rows)
}

// GetCategory godoc
// @Summary Get a category
// @Tags public
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} Envelope{data=model.Category}
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /categories/{id} [get]
func (h *ContentHandler) GetCategory(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	category, err := h.content.GetCategory(c.Request().Context(), id)
	if err != nil {
		return publicError(c, h.logger, "get_category", err, "Category not found")
	}
	return ok(c, category)
}

// ListCategoryMaterials godoc
// @Summary List published materials of a category
// @Tags public
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope{data=[]model.MaterialView,pagination=model.Pagination}
// @Failure 404 {object} Envelope
// @Router /categories/{id}/materials [get]
func (h *ContentHandler) ListCategoryMaterials(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	return h.listMaterials(c, "list_category_materials", repository.ContentFilter{CategoryID: &id})
}

// ListCategoryVideos godoc
// @Summary List published videos of a category
// @Tags public
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope{data=[]model.VideoView,pagination=model.Pagination}
// @Failure 404 {object} Envelope
// @Router /categories/{id}/videos [get]
func (h *ContentHandler) ListCategoryVideos(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	return h.listVideos(c, "list_category_videos", repository.ContentFilter{CategoryID: &id})
}

// ListMaterials godoc
// @Summary List published materials
// @Tags public
// @Produce json
// @Param category query int false "Category ID"
// @Param author query string false "Author substring (case-insensitive)"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope{data=[]model.MaterialView,pagination=model.Pagination}
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /materials [get]
func (h *ContentHandler) ListMaterials(c echo.Context) error {
	category, err := queryCategory(c)
	if err != nil {
		return publicError(c, h.logger, "list_materials", err, "")
	}
	return h.listMaterials(c, "list_materials", repository.ContentFilter{
		CategoryID: category,
		Author:     c.QueryParam("author"),
	})
}

// ListMaterialsByAuthor godoc
// @Summary List published materials by author
// @Tags public
// @Produce json
// @Param author path string true "Author substring (case-insensitive)"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope{data=[]model.MaterialView,pagination=model.Pagination}
// @Failure 500 {object} Envelope
// @Router /materials/author/{author} [get]
func (h *ContentHandler) ListMaterialsByAuthor(c echo.Context) error {
	return h.listMaterials(c, "list_materials_by_author", repository.ContentFilter{Author: c.Param("author")})
}

func (h *ContentHandler) listMaterials(c echo.Context, op string, filter repository.ContentFilter) error {
	rows, pagination, err := h.content.ListMaterials(c.Request().Context(), filter, queryPage(c))
	if err != nil {
		return publicError(c, h.logger, op, err, "")
	}
	return okPage(c, rows, pagination)
}

// GetMaterial godoc
// @Summary Get a published material
// @Tags public
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} Envelope{data=model.MaterialView}
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /materials/{id} [get]
func (h *ContentHandler) GetMaterial(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusNotFound, "Material not found")
	}
	material, err := h.content.GetMaterial(c.Request().Context(), id)
	if err != nil {
		return publicError(c, h.logger, "get_material", err, "Material not found")
	}
	return ok(c, material)
}

// ListAuthors godoc
// @Summary List authors of published materials
// @Tags public
// @Produce json
// @Success 200 {object} Envelope{data=[]model.AuthorSummary}
// @Failure 500 {object} Envelope
// @Router /authors [get]
func (h *ContentHandler) ListAuthors(c echo.Context) error {
	rows, err := h.content.ListAuthors(c.Request().Context())
	if err != nil {
		return publicError(c, h.logger, "list_authors", err, "")
	}
	return ok(c, rows)
}

// ListVideos godoc
// @Summary List published videos
// @Tags public
// @Produce json
// @Param category query int false "Category ID"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} Envelope{data=[]model.VideoView,pagination=model.Pagination}
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /videos [get]
func (h *ContentHandler) ListVideos(c echo.Context) error {
	category, err := queryCategory(c)
	if err != nil {
		return publicError(c, h.logger, "list_videos", err, "")
	}
	return h.listVideos(c, "list_videos", repository.ContentFilter{CategoryID: category})
}

func (h *ContentHandler) listVideos(c echo.Context, op string, filter repository.ContentFilter) error {
	rows, pagination, err := h.content.ListVideos(c.Request().Context(), filter, queryPage(c))
	if err != nil {
		return publicError(c, h.logger, op, err, "")
	}
	return okPage(c, rows, pagination)
}

// GetVideo godoc
// @Summary Get a published video
// @Tags public
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} Envelope{data=model.VideoView}
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /videos/{id} [get]
func (h *ContentHandler) GetVideo(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusNotFound, "Video not found")
	}
	video, err := h.content.GetVideo(c.Request().Context(), id)
	if err != nil {
		return publicError(c, h.logger, "get_video", err, "Video not found")
	}
	return ok(c, video)
}

// Search godoc
// @Summary Search published materials and videos
// @Tags public
// @Produce json
// @Param q query string true "Search text"
// @Param type query string false "materials or videos"
// @Param category query int false "Category ID"
// @Param page query int false "Page (1-indexed)" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /search [get]
func (h *ContentHandler) Search(c echo.Context) error {
	category, err := queryCategory(c)
	if err != nil {
		return publicError(c, h.logger, "search", err, "")
	}
	page := queryPage(c)
	q := service.SearchQuery{
		Query:      c.QueryParam("q"),
		Type:       c.QueryParam("type"),
		CategoryID: category,
		Page:       page,
	}

	result, err := h.content.Search(c.Request().Context(), q)
	if err != nil {
		return publicError(c, h.logger, "search", err, "")
	}
	return c.JSON(http.StatusOK, SearchResponse{
		Success:    true,
		Data:       result,
		Query:      q.Query,
		Pagination: SearchPagination{Page: page.Page, Limit: page.Limit},
	})
}

// Latest godoc
// @Summary Newest published materials and videos
// @Tags public
// @Produce json
// @Param limit query int false "Items per kind" default(5)
// @Success 200 {object} Envelope{data=service.LatestContent}
// @Failure 500 {object} Envelope
// @Router /latest [get]
func (h *ContentHandler) Latest(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	latest, err := h.content.Latest(c.Request().Context(), limit)
	if err != nil {
		return publicError(c, h.logger, "latest", err, "")
	}
	return ok(c, latest)
}

// Health godoc
// @Summary Liveness probe
// @Tags public
// @Produce json
// @Success 200 {object} Envelope
// @Router /health [get]
func (h *ContentHandler) Health(c echo.Context) error {
	return ok(c, map[string]string{"status": "ok"})
}
