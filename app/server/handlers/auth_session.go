package handlers

import (
	"employee-contacts/app/server/session"

	"github.com/labstack/echo/v4"
)

// sessionLoginID 从会话 cookie 中提取身份键。cookie 缺失、签名无效等情况
// 一律按未登录处理，由调用方决定跳转。
func (a *App) sessionLoginID(c echo.Context) (uint, bool) {
	sess := a.sc.Decode(c.Request())
	return sess.LoginID()
}

// issueSession 为指定身份签发新的会话 cookie
func (a *App) issueSession(c echo.Context, loginID uint) error {
	sess := session.Session{}
	sess.SetLoginID(loginID)

	cookie, err := a.sc.Cookie(sess)
	if err != nil {
		return err
	}

	c.SetCookie(cookie)
	return nil
}
