package domain

import (
	"time"

	"gorm.io/gorm"
)

// Contact 联系表单，只有创建/查询/删除，没有更新操作
type Contact struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Theme     string         `gorm:"size:200;not null" json:"theme"`
	Context   string         `gorm:"type:text;not null" json:"context"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Contact) TableName() string { return "contacts" }
