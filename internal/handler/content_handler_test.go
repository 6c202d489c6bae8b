package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "eduportal/internal/errors"
	"eduportal/internal/model"
	"eduportal/internal/repository"
	"eduportal/internal/service"
	"eduportal/internal/service/servicemock"
)

func newContentRoutes() (*servicemock.ContentService, *echo.Echo) {
	svc := new(servicemock.ContentService)
	h := NewContentHandler(svc, quietLogger())
	e := newTestEcho()
	e.GET("/api/categories/:id", h.GetCategory)
	e.GET("/api/categories/:id/materials", h.ListCategoryMaterials)
	e.GET("/api/materials", h.ListMaterials)
	e.GET("/api/materials/:id", h.GetMaterial)
	e.GET("/api/materials/author/:author", h.ListMaterialsByAuthor)
	e.GET("/api/videos", h.ListVideos)
	e.GET("/api/search", h.Search)
	e.GET("/api/latest", h.Latest)
	return svc, e
}

func TestContentHandler_ListMaterials_Pagination(t *testing.T) {
	svc, e := newContentRoutes()
	rows := make([]model.MaterialView, 5)
	svc.On("ListMaterials", mock.Anything, repository.ContentFilter{}, repository.Page{Page: 2, Limit: 5}).
		Return(rows, model.NewPagination(12, 2, 5), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials?page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 5)
	assert.Equal(t, map[string]interface{}{"total": 12.0, "page": 2.0, "limit": 5.0, "pages": 3.0}, body["pagination"])
}

func TestContentHandler_ListMaterials_Filters(t *testing.T) {
	svc, e := newContentRoutes()
	category := uint(4)
	svc.On("ListMaterials", mock.Anything, repository.ContentFilter{CategoryID: &category, Author: "Curie"}, repository.Page{Page: 1, Limit: 10}).
		Return([]model.MaterialView{}, model.NewPagination(0, 1, 10), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/materials?category=4&author=Curie&page=abc", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/videos?category=biology", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid category", decode(t, rec)["error"])
}

func TestContentHandler_ScopedListings(t *testing.T) {
	svc, e := newContentRoutes()
	category := uint(7)
	svc.On("ListMaterials", mock.Anything, repository.ContentFilter{CategoryID: &category}, mock.Anything).
		Return([]model.MaterialView{}, model.NewPagination(0, 1, 10), nil)
	svc.On("ListMaterials", mock.Anything, repository.ContentFilter{Author: "Ada Lovelace"}, mock.Anything).
		Return([]model.MaterialView{}, model.NewPagination(0, 1, 10), nil)

	assert.Equal(t, http.StatusOK, serve(e, httptest.NewRequest(http.MethodGet, "/api/categories/7/materials", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(e, httptest.NewRequest(http.MethodGet, "/api/materials/author/Ada%20Lovelace", nil)).Code)
	svc.AssertExpectations(t)
}

func TestContentHandler_Details(t *testing.T) {
	svc, e := newContentRoutes()
	svc.On("GetMaterial", mock.Anything, uint(5)).Return(nil, apperrors.ErrNotFound)
	svc.On("GetMaterial", mock.Anything, uint(6)).Return(&model.MaterialView{Material: model.Material{ID: 6, Title: "Cells"}}, nil)
	svc.On("GetCategory", mock.Anything, uint(1)).Return(nil, errors.New("db down"))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantError  string
	}{
		{"non-numeric id", "/api/materials/abc", http.StatusNotFound, "Material not found"},
		{"missing or draft", "/api/materials/5", http.StatusNotFound, "Material not found"},
		{"found", "/api/materials/6", http.StatusOK, ""},
		{"store failure", "/api/categories/1", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantError == "", body["success"])
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestContentHandler_Search(t *testing.T) {
	svc, e := newContentRoutes()
	empty := &service.SearchResult{Materials: []model.MaterialView{}, Videos: []model.VideoView{}}
	svc.On("Search", mock.Anything, service.SearchQuery{Query: "cancer", Type: "videos", Page: repository.Page{Page: 1, Limit: 10}}).
		Return(empty, nil)
	svc.On("Search", mock.Anything, service.SearchQuery{Page: repository.Page{Page: 1, Limit: 10}}).
		Return(nil, apperrors.NewValidationError("Search query is required"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=cancer&type=videos", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"materials":[],"videos":[]},"query":"cancer","pagination":{"page":1,"limit":10}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Search query is required"}`, rec.Body.String())
}

func TestContentHandler_Latest(t *testing.T) {
	svc, e := newContentRoutes()
	svc.On("Latest", mock.Anything, 3).Return(&service.LatestContent{
		Materials: []model.LatestMaterial{{ContentType: model.ContentTypeMaterial}},
		Videos:    []model.LatestVideo{},
	}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/latest?limit=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotContains(t, body, "pagination")
	data := body["data"].(map[string]interface{})
	materials := data["materials"].([]interface{})
	assert.Equal(t, "material", materials[0].(map[string]interface{})["content_type"])
}
