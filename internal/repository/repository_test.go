package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduportal/internal/db"
	"eduportal/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "portal.db") + "?_foreign_keys=on"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedMaterials(t *testing.T, repo MaterialRepository, n int, status model.ContentStatus, categoryID *uint, author *string) {
	t.Helper()
	for i := 0; i < n; i++ {
		m := &model.Material{
			Title:      fmt.Sprintf("%s material %d", status, i),
			Content:    "body",
			Author:     author,
			CategoryID: categoryID,
			Status:     status,
			CreatedAt:  baseTime.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), m))
	}
}

func TestMaterialRepository_PaginationMatchesCount(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewMaterialRepository(gormDB)
	ctx := context.Background()

	seedMaterials(t, repo, 12, model.StatusPublished, nil, nil)
	seedMaterials(t, repo, 3, model.StatusDraft, nil, nil)

	page := NewPage(2, 5)
	rows, err := repo.ListPublished(ctx, ContentFilter{}, page)
	require.NoError(t, err)
	total, err := repo.CountPublished(ctx, ContentFilter{})
	require.NoError(t, err)

	assert.Len(t, rows, 5)
	assert.Equal(t, model.NewPagination(12, 2, 5), model.NewPagination(total, page.Page, page.Limit))
	assert.Equal(t, 3, model.NewPagination(total, 2, 5).Pages)
	for _, r := range rows {
		assert.Equal(t, model.StatusPublished, r.Status)
	}
	// newest first: page 2 starts at the 6th newest (index 6 of 0..11)
	assert.Equal(t, "published material 6", rows[0].Title)
}

func TestMaterialRepository_FilterCombinations(t *testing.T) {
	gormDB := newTestDB(t)
	categories := NewCategoryRepository(gormDB)
	repo := NewMaterialRepository(gormDB)
	ctx := context.Background()

	science := &model.Category{Name: "Science"}
	require.NoError(t, categories.Create(ctx, science))

	seedMaterials(t, repo, 4, model.StatusPublished, uintPtr(science.ID), strPtr("Dr. Jane Smith"))
	seedMaterials(t, repo, 2, model.StatusPublished, uintPtr(science.ID), strPtr("Bob"))
	seedMaterials(t, repo, 3, model.StatusPublished, nil, strPtr("jane doe"))
	seedMaterials(t, repo, 2, model.StatusDraft, uintPtr(science.ID), strPtr("Jane"))

	tests := []struct {
		name   string
		filter ContentFilter
		want   int
	}{
		{"no filter", ContentFilter{}, 9},
		{"category", ContentFilter{CategoryID: uintPtr(science.ID)}, 6},
		{"author substring ignores case", ContentFilter{Author: "JANE"}, 7},
		{"category and author", ContentFilter{CategoryID: uintPtr(science.ID), Author: "jane"}, 4},
		{"unknown category", ContentFilter{CategoryID: uintPtr(999)}, 0},
		{"query over author", ContentFilter{Query: "smith"}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := repo.CountPublished(ctx, tt.filter)
			require.NoError(t, err)
			rows, err := repo.ListPublished(ctx, tt.filter, NewPage(1, 100))
			require.NoError(t, err)

			assert.Equal(t, int64(tt.want), total)
			assert.Len(t, rows, tt.want)
		})
	}
}

func TestMaterialRepository_DraftInvisibleByID(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewMaterialRepository(gormDB)
	ctx := context.Background()

	draft := &model.Material{Title: "hidden", Content: "x", Status: model.StatusDraft}
	require.NoError(t, repo.Create(ctx, draft))
	published := &model.Material{Title: "shown", Content: "x", Status: model.StatusPublished}
	require.NoError(t, repo.Create(ctx, published))

	_, err := repo.FindPublishedByID(ctx, draft.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.FindPublishedByID(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, "shown", got.Title)
	assert.Nil(t, got.CategoryName)
}

func TestMaterialRepository_UpdateKeepsImageWithoutUpload(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewMaterialRepository(gormDB)
	ctx := context.Background()

	m := &model.Material{Title: "t", Content: "c", Author: strPtr("a"), Image: strPtr("/uploads/images/old.png"), Status: model.StatusPublished}
	require.NoError(t, repo.Create(ctx, m))

	require.NoError(t, repo.Update(ctx, &model.Material{ID: m.ID, Title: "t2", Content: "c2", Status: model.StatusDraft}, false))

	var got model.Material
	require.NoError(t, gormDB.First(&got, m.ID).Error)
	assert.Equal(t, "t2", got.Title)
	assert.Nil(t, got.Author, "omitted fields are overwritten with NULL")
	require.NotNil(t, got.Image)
	assert.Equal(t, "/uploads/images/old.png", *got.Image)

	require.NoError(t, repo.Update(ctx, &model.Material{ID: m.ID, Title: "t3", Content: "c3", Status: model.StatusPublished, Image: strPtr("/uploads/images/new.png")}, true))
	require.NoError(t, gormDB.First(&got, m.ID).Error)
	assert.Equal(t, "/uploads/images/new.png", *got.Image)
}

func TestCategoryRepository_DeleteNullsReferences(t *testing.T) {
	gormDB := newTestDB(t)
	categories := NewCategoryRepository(gormDB)
	materials := NewMaterialRepository(gormDB)
	videos := NewVideoRepository(gormDB)
	ctx := context.Background()

	c := &model.Category{Name: "History"}
	require.NoError(t, categories.Create(ctx, c))
	m := &model.Material{Title: "m", Content: "c", CategoryID: uintPtr(c.ID), Status: model.StatusPublished}
	require.NoError(t, materials.Create(ctx, m))
	v := &model.Video{Title: "v", VideoURL: "/uploads/videos/v.mp4", CategoryID: uintPtr(c.ID), Status: model.StatusPublished}
	require.NoError(t, videos.Create(ctx, v))

	require.NoError(t, categories.Delete(ctx, c.ID))

	var gotM model.Material
	require.NoError(t, gormDB.First(&gotM, m.ID).Error)
	assert.Nil(t, gotM.CategoryID)
	var gotV model.Video
	require.NoError(t, gormDB.First(&gotV, v.ID).Error)
	assert.Nil(t, gotV.CategoryID)

	// deleting again is not an error
	assert.NoError(t, categories.Delete(ctx, c.ID))
}

func TestCategoryRepository_ListWithCounts(t *testing.T) {
	gormDB := newTestDB(t)
	categories := NewCategoryRepository(gormDB)
	materials := NewMaterialRepository(gormDB)
	videos := NewVideoRepository(gormDB)
	ctx := context.Background()

	math := &model.Category{Name: "Math"}
	art := &model.Category{Name: "Art"}
	empty := &model.Category{Name: "Zoology"}
	for _, c := range []*model.Category{math, art, empty} {
		require.NoError(t, categories.Create(ctx, c))
	}
	seedMaterials(t, materials, 3, model.StatusPublished, uintPtr(math.ID), nil)
	seedMaterials(t, materials, 2, model.StatusDraft, uintPtr(math.ID), nil)
	for i := 0; i < 2; i++ {
		require.NoError(t, videos.Create(ctx, &model.Video{Title: "v", VideoURL: "u", CategoryID: uintPtr(math.ID), Status: model.StatusPublished}))
	}
	require.NoError(t, videos.Create(ctx, &model.Video{Title: "v", VideoURL: "u", CategoryID: uintPtr(art.ID), Status: model.StatusPublished}))

	rows, err := categories.ListWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Art", rows[0].Name)
	assert.Equal(t, int64(0), rows[0].MaterialCount)
	assert.Equal(t, int64(1), rows[0].VideoCount)
	assert.Equal(t, "Math", rows[1].Name)
	assert.Equal(t, int64(3), rows[1].MaterialCount)
	assert.Equal(t, int64(2), rows[1].VideoCount)
	assert.Equal(t, "Zoology", rows[2].Name)
	assert.Equal(t, int64(0), rows[2].MaterialCount)
	assert.Equal(t, int64(0), rows[2].VideoCount)
}

func TestVideoRepository_SearchAndUpdate(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewVideoRepository(gormDB)
	ctx := context.Background()

	v := &model.Video{Title: "Intro to Biology", Description: strPtr("Cells and tissues"), VideoURL: "/uploads/videos/a.mp4", Thumbnail: strPtr("/uploads/images/a.png"), Duration: 90, Status: model.StatusPublished}
	require.NoError(t, repo.Create(ctx, v))
	require.NoError(t, repo.Create(ctx, &model.Video{Title: "Chemistry", VideoURL: "u", Status: model.StatusPublished}))

	rows, err := repo.ListPublished(ctx, ContentFilter{Query: "TISSUE"}, NewPage(1, 10))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, v.ID, rows[0].ID)

	rows, err = repo.ListPublished(ctx, ContentFilter{Query: "cancer"}, NewPage(1, 10))
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, repo.Update(ctx, &model.Video{ID: v.ID, Title: "Biology", VideoURL: "/uploads/videos/b.mp4", Status: model.StatusPublished}, true, false))
	var got model.Video
	require.NoError(t, gormDB.First(&got, v.ID).Error)
	assert.Equal(t, "/uploads/videos/b.mp4", got.VideoURL)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "/uploads/images/a.png", *got.Thumbnail)
	assert.Equal(t, 0, got.Duration)
	assert.Nil(t, got.Description)
}

func TestAdminRepository(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewAdminRepository(gormDB)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, &model.Admin{Email: "a@example.com", PasswordHash: "h1", Name: "A"}))
	assert.Error(t, repo.Create(ctx, &model.Admin{Email: "a@example.com", PasswordHash: "h2", Name: "B"}), "email is unique")

	affected, err := repo.UpdatePassword(ctx, "a@example.com", "h3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.UpdatePassword(ctx, "nobody@example.com", "h3")
	require.NoError(t, err)
	assert.Zero(t, affected)

	admin, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "h3", admin.PasswordHash)
}

func TestPage(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: 10}, NewPage(0, -3))
	assert.Equal(t, 10, NewPage(3, 5).Offset())
}
