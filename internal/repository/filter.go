package repository

import (
	"strings"

	"gorm.io/gorm"

	"eduportal/internal/model"
)

const (
	// DefaultPage and DefaultLimit apply when the caller omits or mangles paging input.
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is a 1-indexed page request.
type Page struct {
	Page  int
	Limit int
}

// NewPage normalises page/limit, falling back to the defaults for non-positive values.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Limit)
}

// ContentFilter narrows public listings. Every field is optional and all
// provided fields are AND-composed. The same predicate feeds both the row
// query and its count query.
type ContentFilter struct {
	CategoryID *uint
	Author     string // case-insensitive substring, materials only
	Query      string // case-insensitive substring over the searchable columns
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// materialScope restricts the "m" alias to published rows matching f.
func (f ContentFilter) materialScope(db *gorm.DB) *gorm.DB {
	db = db.Where("m.status = ?", model.StatusPublished)
	if f.CategoryID != nil {
		db = db.Where("m.category_id = ?", *f.CategoryID)
	}
	if f.Author != "" {
		db = db.Where("LOWER(m.author) LIKE ?", containsPattern(f.Author))
	}
	if f.Query != "" {
		p := containsPattern(f.Query)
		db = db.Where("(LOWER(m.title) LIKE ? OR LOWER(m.content) LIKE ? OR LOWER(m.author) LIKE ?)", p, p, p)
	}
	return db
}

// videoScope restricts the "v" alias to published rows matching f.
// Author does not apply to videos.
func (f ContentFilter) videoScope(db *gorm.DB) *gorm.DB {
	db = db.Where("v.status = ?", model.StatusPublished)
	if f.CategoryID != nil {
		db = db.Where("v.category_id = ?", *f.CategoryID)
	}
	if f.Query != "" {
		p := containsPattern(f.Query)
		db = db.Where("(LOWER(v.title) LIKE ? OR LOWER(v.description) LIKE ?)", p, p)
	}
	return db
}
