package models

import "time"

type Contact struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	First    string `gorm:"column:first"`
	Last     string `gorm:"column:last"`
	Twitter  string `gorm:"column:twitter"`
	Avatar   string `gorm:"column:avatar"`
	Notes    string `gorm:"column:notes"`
	Favorite bool   `gorm:"column:favorite;default:false"` // 是否收藏
}

func (Contact) TableName() string {
	return "contacts"
}
