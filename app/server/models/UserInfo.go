package models

import "time"

type UserInfo struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// 与 login_info 一对一关联，唯一索引兜底防止重复登记
	LoginID uint `gorm:"column:login_id;uniqueIndex:uniq_user_info_login_id"`

	// 个人信息
	FirstName     string `gorm:"column:first_name"`
	LastName      string `gorm:"column:last_name"`
	FirstNameKana string `gorm:"column:first_name_kana"`
	LastNameKana  string `gorm:"column:last_name_kana"`
	Birth         string `gorm:"column:birth"`
	PhoneNumber   string `gorm:"column:phone_number"`
	Address       string `gorm:"column:address"`
	GenderID      int    `gorm:"column:gender_id"`

	// 组织信息
	PositionID      int    `gorm:"column:position_id"`
	UpperDepartment string `gorm:"column:upper_department"`
	LowerDepartment string `gorm:"column:lower_department"`
	CareerStartDate string `gorm:"column:career_start_date"`
	Notes           string `gorm:"column:notes"`

	IsDeleted bool `gorm:"column:is_deleted;default:false"` // 软删除标记
}

func (UserInfo) TableName() string {
	return "user_info"
}
