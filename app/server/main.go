package main

import (
	"context"
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/handlers"
	"employee-contacts/app/server/inits"
	"employee-contacts/app/server/session"
	"employee-contacts/app/server/views"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化会话编解码，密钥不允许为空
	sc, err := session.New(cfg.Security.SessionSecretKey, cfg.System.IsProd)
	if err != nil {
		l.Fatal("error initializing session codec", zap.Error(err))
	}

	// 初始化模板渲染
	renderer, err := views.New()
	if err != nil {
		l.Fatal("error initializing renderer", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, database.NewGateway(db), rdb, sc)

	// 准备 echo 服务
	e := echo.New()
	e.Renderer = renderer
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	e.GET("/", handlerApp.Home)
	e.POST("/contacts", handlerApp.ContactCreate)
	e.GET("/contacts/:id", handlerApp.ContactView)
	e.GET("/contacts/:id/edit", handlerApp.ContactEditForm)
	e.POST("/contacts/:id/edit", handlerApp.ContactEdit)
	e.POST("/contacts/:id/favorite", handlerApp.ContactFavorite)
	e.POST("/contacts/:id/destroy", handlerApp.ContactDelete)
	e.GET("/login", handlerApp.LoginForm)
	e.POST("/login", handlerApp.Login)
	e.POST("/logout", handlerApp.Logout)
	e.GET("/register", handlerApp.RegisterForm)
	e.POST("/register", handlerApp.Register)
	e.GET("/user/new", handlerApp.UserNewForm)
	e.POST("/user/new", handlerApp.UserNewSubmit)
	e.GET("/healthz", handlerApp.HealthCheck)

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// 按顺序回收资源：先停服务，再关数据库与 redis
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			l.Error("error closing DB connection", zap.Error(err))
		}
	}
	if err := rdb.Close(); err != nil {
		l.Error("error closing Redis connection", zap.Error(err))
	}
}
