package handlers

import (
	"employee-contacts/app/server/database"
	"errors"
	"net/http"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) LoginForm(c echo.Context) error {
	// 已登录的用户没必要再看登录页
	if _, ok := a.sessionLoginID(c); ok {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Render(http.StatusOK, "login.html", map[string]any{})
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定表单
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Render(http.StatusBadRequest, "login.html", map[string]any{
			"Error": "Email and password are required",
		})
	}

	login, err := a.db.FindLoginByEmail(rctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// 不区分“用户不存在”和“密码错误”
			return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
				"Error": "Invalid email or password",
			})
		}
		a.l.Error("failed to find login", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, login.PwHash); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
			"Error": "Invalid email or password",
		})
	}

	// 签发会话
	if err := a.issueSession(c, login.LoginID); err != nil {
		a.l.Error("failed to issue session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (a *App) Logout(c echo.Context) error {
	// 会话在客户端，注销就是让 cookie 立即过期
	c.SetCookie(a.sc.Expired())
	return c.Redirect(http.StatusFound, "/login")
}
