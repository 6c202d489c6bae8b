package model

import "time"

// Material represents a published or draft article.
type Material struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	Title      string        `json:"title" gorm:"size:255;not null"`
	Content    string        `json:"content" gorm:"type:text;not null"`
	Author     *string       `json:"author" gorm:"size:255;index"`
	CategoryID *uint         `json:"category_id" gorm:"index"`
	Image      *string       `json:"image" gorm:"size:500"`
	Status     ContentStatus `json:"status" gorm:"type:varchar(20);not null;default:'published';index;check:chk_materials_status,status IN ('published','draft')"`
	CreatedAt  time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Relations
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// MaterialView is a material joined with its category name.
type MaterialView struct {
	Material
	CategoryName *string `json:"category_name"`
}

// AuthorSummary aggregates the published materials of one author.
type AuthorSummary struct {
	Author         string    `json:"author"`
	MaterialCount  int64     `json:"material_count"`
	LatestMaterial time.Time `json:"latest_material"`
}
