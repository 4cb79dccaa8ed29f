package models

import "time"

type LoginInfo struct {
	LoginID   uint      `gorm:"column:login_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// 认证凭据
	Email  string `gorm:"column:email;uniqueIndex:uniq_login_info_email,where:is_deleted = false"` // 邮箱，未删除的记录内全局唯一
	PwHash string `gorm:"column:pw_hash"`                                                          // 密码，使用 argon2id 储存
	RoleID int    `gorm:"column:role_id"`                                                          // 角色标识，默认为普通用户

	// 审计与软删除
	IsDeleted  bool   `gorm:"column:is_deleted;default:false"` // 软删除标记，已删除的记录不参与查询与唯一性
	CreateUser string `gorm:"column:create_user"`
	UpdateUser string `gorm:"column:update_user"`
}

func (LoginInfo) TableName() string {
	return "login_info"
}
