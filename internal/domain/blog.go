package domain

import (
	"time"

	"gorm.io/gorm"
)

type Blog struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Title      string        `gorm:"size:200;not null" json:"title"`
	Content    string        `gorm:"type:text;not null" json:"content"`
	Summary    string        `gorm:"size:500" json:"summary"`
	Status     ContentStatus `gorm:"size:16;not null;default:draft" json:"status"`
	Visibility Visibility    `gorm:"size:16;not null;default:public" json:"visibility"`
	Tags       StringList    `gorm:"type:text" json:"tags"`
	Category   BlogCategory  `gorm:"size:16" json:"category"`

	LikeCount    int `gorm:"not null;default:0" json:"like_count"`
	CommentCount int `gorm:"not null;default:0" json:"comment_count"`
	ShareCount   int `gorm:"not null;default:0" json:"share_count"`
	ViewCount    int `gorm:"not null;default:0" json:"view_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Blog) TableName() string { return "blogs" }

// BlogUpdate 部分更新：只有非 nil 的字段会被写入
type BlogUpdate struct {
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	Summary    *string        `json:"summary"`
	Status     *ContentStatus `json:"status"`
	Visibility *Visibility    `json:"visibility"`
	Tags       *StringList    `json:"tags"`
	Category   *BlogCategory  `json:"category"`
}

func (u BlogUpdate) Apply(b *Blog) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
	if u.Summary != nil {
		b.Summary = *u.Summary
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Visibility != nil {
		b.Visibility = *u.Visibility
	}
	if u.Tags != nil {
		b.Tags = *u.Tags
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
}
