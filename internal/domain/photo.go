package domain

import (
	"time"

	"gorm.io/gorm"
)

type Photo struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Title        string        `gorm:"size:100" json:"title"`
	Description  string        `gorm:"type:text" json:"description"`
	URLList      StringList    `gorm:"type:text" json:"url_list"`
	LocationName string        `gorm:"size:200" json:"location_name"`
	Status       ContentStatus `gorm:"size:16;not null;default:draft" json:"status"`
	Visibility   Visibility    `gorm:"size:16;not null;default:public" json:"visibility"`
	Tags         StringList    `gorm:"type:text" json:"tags"`
	Category     PhotoCategory `gorm:"size:16" json:"category"`

	LikeCount    int `gorm:"not null;default:0" json:"like_count"`
	CommentCount int `gorm:"not null;default:0" json:"comment_count"`
	ShareCount   int `gorm:"not null;default:0" json:"share_count"`
	ViewCount    int `gorm:"not null;default:0" json:"view_count"`

	TakenAt   *time.Time     `json:"taken_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Photo) TableName() string { return "photos" }

type PhotoUpdate struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	URLList      *StringList    `json:"url_list"`
	LocationName *string        `json:"location_name"`
	Status       *ContentStatus `json:"status"`
	Visibility   *Visibility    `json:"visibility"`
	Tags         *StringList    `json:"tags"`
	Category     *PhotoCategory `json:"category"`
	TakenAt      *time.Time     `json:"taken_at"`
}

func (u PhotoUpdate) Apply(p *Photo) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.URLList != nil {
		p.URLList = *u.URLList
	}
	if u.LocationName != nil {
		p.LocationName = *u.LocationName
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Visibility != nil {
		p.Visibility = *u.Visibility
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.TakenAt != nil {
		p.TakenAt = u.TakenAt
	}
}
