package handlers

import (
	"employee-contacts/app/server/constants"
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/models"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UserNewForm 个人信息登记页。按顺序判定三种结果：
// 未登录跳登录页；已登记过跳首页（登记是一次性的）；否则渲染表单。
func (a *App) UserNewForm(c echo.Context) error {
	loginID, ok := a.sessionLoginID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	rctx := c.Request().Context()

	if _, err := a.db.FindProfileByLoginID(rctx, loginID); err == nil {
		return c.Redirect(http.StatusFound, "/")
	} else if !errors.Is(err, database.ErrNotFound) {
		a.l.Error("failed to find profile", zap.Uint("loginID", loginID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "user_new.html", map[string]any{
		"LoginID":     loginID,
		"Departments": constants.DepartmentOptions,
	})
}

func (a *App) UserNewSubmit(c echo.Context) error {
	// 写入路径同样必须校验身份，绝不信任表单里携带的身份值
	loginID, ok := a.sessionLoginID(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	rctx := c.Request().Context()

	// 重复提交不允许产生第二条记录
	if _, err := a.db.FindProfileByLoginID(rctx, loginID); err == nil {
		return c.Redirect(http.StatusFound, "/")
	} else if !errors.Is(err, database.ErrNotFound) {
		a.l.Error("failed to find profile", zap.Uint("loginID", loginID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 校验分类字段，未知取值一律拒绝，不做缺省兜底
	genderID, ok := constants.GenderIDs[c.FormValue("gender")]
	if !ok {
		return a.userNewInvalid(c, loginID, "Unknown gender value")
	}
	positionID, ok := constants.PositionIDs[c.FormValue("position")]
	if !ok {
		return a.userNewInvalid(c, loginID, "Unknown position value")
	}

	// 自由文本字段原样入库，身份以会话为准
	profile := models.UserInfo{
		LoginID:         loginID,
		FirstName:       c.FormValue("first"),
		LastName:        c.FormValue("last"),
		FirstNameKana:   c.FormValue("first_kana"),
		LastNameKana:    c.FormValue("last_kana"),
		Birth:           c.FormValue("birth"),
		PhoneNumber:     c.FormValue("phonenumber"),
		Address:         c.FormValue("address"),
		GenderID:        genderID,
		PositionID:      positionID,
		UpperDepartment: c.FormValue("upper_department"),
		LowerDepartment: c.FormValue("lower_department"),
		CareerStartDate: c.FormValue("career_start_date"),
		Notes:           c.FormValue("notes"),
	}
	if err := a.db.InsertProfile(rctx, &profile); err != nil {
		a.l.Error("failed to insert profile", zap.Uint("loginID", loginID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusFound, "/")
}

func (a *App) userNewInvalid(c echo.Context, loginID uint, msg string) error {
	return c.Render(http.StatusUnprocessableEntity, "user_new.html", map[string]any{
		"LoginID":     loginID,
		"Departments": constants.DepartmentOptions,
		"Error":       msg,
	})
}
