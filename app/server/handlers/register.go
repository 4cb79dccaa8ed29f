package handlers

import (
	"employee-contacts/app/server/constants"
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/models"
	"errors"
	"net/http"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) RegisterForm(c echo.Context) error {
	if _, ok := a.sessionLoginID(c); ok {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Render(http.StatusOK, "register.html", map[string]any{})
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定表单
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Render(http.StatusBadRequest, "register.html", map[string]any{
			"Error": "Email and password are required",
		})
	}

	// 处理密码
	pwHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建登录记录，角色取默认值
	login := models.LoginInfo{
		Email:      email,
		PwHash:     pwHash,
		RoleID:     constants.DefaultRoleID,
		CreateUser: email,
		UpdateUser: email,
	}
	if err := a.db.InsertLogin(rctx, &login); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			// 唯一约束冲突要单独提示，而不是笼统的失败
			return c.Render(http.StatusConflict, "register.html", map[string]any{
				"Error": "This email is already registered",
			})
		}
		a.l.Error("failed to insert login", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 注册即登录，跳去填写个人信息
	if err := a.issueSession(c, login.LoginID); err != nil {
		a.l.Error("failed to issue session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusFound, "/user/new")
}
