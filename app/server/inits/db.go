package inits

import (
	"employee-contacts/app/server/models"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接， TranslateError 让唯一约束冲突映射成 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 限制连接池，池耗尽时等待受请求上下文约束，不会无限挂起
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.LoginInfo{},
		&models.UserInfo{},
		&models.Contact{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化联系人
	if err = db.Model(&models.Contact{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get contact count: %w", err)
	} else if counter == 0 { // 没有任何联系人，添加示例数据
		if err = db.Create([]*models.Contact{
			{
				First:   "Your",
				Last:    "Name",
				Twitter: "@your_handle",
				Avatar:  "https://placecats.com/200/200",
			},
			{
				First:   "Shruti",
				Last:    "Kapoor",
				Twitter: "@shrutikapoor08",
			},
			{
				First:   "Ryan",
				Last:    "Florence",
				Twitter: "@ryanflorence",
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create initial contacts: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
