package model

import "time"

// Video represents a published or draft video entry.
type Video struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"size:255;not null"`
	Description *string       `json:"description" gorm:"type:text"`
	VideoURL    string        `json:"video_url" gorm:"column:video_url;size:500;not null"`
	Thumbnail   *string       `json:"thumbnail" gorm:"size:500"`
	Duration    int           `json:"duration" gorm:"not null;default:0"` // seconds
	CategoryID  *uint         `json:"category_id" gorm:"index"`
	Status      ContentStatus `json:"status" gorm:"type:varchar(20);not null;default:'published';index;check:chk_videos_status,status IN ('published','draft')"`
	CreatedAt   time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// VideoView is a video joined with its category name.
type VideoView struct {
	Video
	CategoryName *string `json:"category_name"`
}
