package model

import "time"

// Category groups materials and videos.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryWithCounts is a category plus the number of published items referencing it.
type CategoryWithCounts struct {
	Category
	MaterialCount int64 `json:"material_count"`
	VideoCount    int64 `json:"video_count"`
}
