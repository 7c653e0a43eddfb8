package domain

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// User 账号。软删用毫秒时间戳（0 = 未删），和 username 组成联合唯一索引：
// 唯一性只约束活跃行，删除后的用户名可以重新注册。
type User struct {
	ID                    uint                  `gorm:"primaryKey" json:"id"`
	Username              string                `gorm:"size:64;not null;uniqueIndex:uniq_users_username_active" json:"username"`
	PasswordHash          string                `gorm:"size:100;not null" json:"-"`
	FullName              string                `gorm:"size:64" json:"full_name"`
	IsAdmin               bool                  `gorm:"not null;default:false" json:"is_admin"`
	RequirePasswordChange bool                  `gorm:"not null;default:false" json:"require_password_change"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	DeletedAt             soft_delete.DeletedAt `gorm:"softDelete:milli;uniqueIndex:uniq_users_username_active" json:"-"`
}

func (User) TableName() string { return "users" }

// UserUpdate 部分更新。Password 由 service 层哈希后写入，IsAdmin 仅管理员路径生效。
type UserUpdate struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=64"`
	FullName *string `json:"full_name" binding:"omitempty,max=64"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsAdmin  *bool   `json:"is_admin"`
}
