package database

import (
	"context"
	"employee-contacts/app/server/models"
	"errors"

	"gorm.io/gorm"
)

// Gateway 基于 gorm 的 Store 实现，全部查询参数化并排除软删除记录
type Gateway struct {
	db *gorm.DB
}

var _ Store = (*Gateway)(nil)

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) FindLoginByEmail(ctx context.Context, email string) (*models.LoginInfo, error) {
	var login models.LoginInfo
	if err := g.db.WithContext(ctx).First(&login, "email = ? AND is_deleted = false", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &login, nil
}

func (g *Gateway) InsertLogin(ctx context.Context, login *models.LoginInfo) error {
	if err := g.db.WithContext(ctx).Create(login).Error; err != nil {
		// 唯一索引只覆盖未删除的记录，软删除后的邮箱可以重新注册
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (g *Gateway) FindProfileByLoginID(ctx context.Context, loginID uint) (*models.UserInfo, error) {
	var profile models.UserInfo
	if err := g.db.WithContext(ctx).First(&profile, "login_id = ? AND is_deleted = false", loginID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (g *Gateway) InsertProfile(ctx context.Context, profile *models.UserInfo) error {
	return g.db.WithContext(ctx).Create(profile).Error
}

func (g *Gateway) ListContacts(ctx context.Context, q string) ([]models.Contact, error) {
	var contacts []models.Contact
	query := g.db.WithContext(ctx).Model(&models.Contact{}).Order("id ASC")
	if q != "" {
		pattern := "%" + q + "%"
		query = query.Where("first ILIKE ? OR last ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (g *Gateway) FindContact(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := g.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (g *Gateway) CreateContact(ctx context.Context, contact *models.Contact) error {
	return g.db.WithContext(ctx).Create(contact).Error
}

func (g *Gateway) UpdateContact(ctx context.Context, contact *models.Contact) error {
	// Select 保证布尔与空字符串字段也会被写回
	return g.db.WithContext(ctx).Model(contact).
		Select("first", "last", "twitter", "avatar", "notes", "favorite").
		Updates(contact).Error
}

func (g *Gateway) DeleteContact(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&models.Contact{}, id).Error
}
