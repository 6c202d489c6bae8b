package model

// Content type discriminators used by the latest-content feed.
const (
	ContentTypeMaterial = "material"
	ContentTypeVideo    = "video"
)

// LatestMaterial tags a material row for mixed feeds.
type LatestMaterial struct {
	MaterialView
	ContentType string `json:"content_type" gorm:"-"`
}

// LatestVideo tags a video row for mixed feeds.
type LatestVideo struct {
	VideoView
	ContentType string `json:"content_type" gorm:"-"`
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for total rows at the given limit.
func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// Stats holds entity counts for the admin dashboard.
type Stats struct {
	Categories         int64 `json:"categories"`
	Materials          int64 `json:"materials"`
	Videos             int64 `json:"videos"`
	PublishedMaterials int64 `json:"published_materials"`
	PublishedVideos    int64 `json:"published_videos"`
}
