package handlers

import (
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/session"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	l   *zap.Logger     // 日志
	db  database.Store  // 持久层
	rdb *redis.Client   // Redis ，用于联系人列表缓存，可以为 nil（测试环境）
	sc  *session.Codec  // 会话编解码，用于无状态认证
}

func NewApp(l *zap.Logger, db database.Store, rdb *redis.Client, sc *session.Codec) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		sc:  sc,
	}
}
