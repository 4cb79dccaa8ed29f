package database

import (
	"context"
	"employee-contacts/app/server/models"
	"errors"
)

var (
	// ErrNotFound 记录不存在（或已被软删除）
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail 邮箱已被未删除的记录占用
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store 持久层的查询接口， handlers 只依赖这个接口，方便测试时替换
type Store interface {
	// 认证相关
	FindLoginByEmail(ctx context.Context, email string) (*models.LoginInfo, error)
	InsertLogin(ctx context.Context, login *models.LoginInfo) error
	FindProfileByLoginID(ctx context.Context, loginID uint) (*models.UserInfo, error)
	InsertProfile(ctx context.Context, profile *models.UserInfo) error

	// 联系人相关
	ListContacts(ctx context.Context, q string) ([]models.Contact, error)
	FindContact(ctx context.Context, id uint) (*models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id uint) error
}
