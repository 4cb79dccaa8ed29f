package handlers

import (
	"context"
	"employee-contacts/app/server/constants"
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func (a *App) Home(c echo.Context) error {
	rctx := c.Request().Context()
	q := c.QueryParam("q")

	var contacts []models.Contact

	// 无搜索词时优先查缓存
	if q == "" && a.rdb != nil {
		if cacheBytes, err := a.rdb.Get(rctx, constants.CacheKeyContactList).Bytes(); err != nil {
			if !errors.Is(err, redis.Nil) {
				a.l.Error("failed to query contact list cache", zap.Error(err))
			}
		} else if err = json.Unmarshal(cacheBytes, &contacts); err != nil {
			a.l.Error("failed to unmarshal contact list", zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			a.rdb.Del(rctx, constants.CacheKeyContactList)
		} else {
			// 成功拉取到并格式化
			return c.Render(http.StatusOK, "home.html", map[string]any{
				"Contacts": contacts,
				"Q":        q,
			})
		}
	}

	// 查询数据库
	contacts, err := a.db.ListContacts(rctx, q)
	if err != nil {
		a.l.Error("failed to list contacts", zap.String("q", q), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 格式化并加入缓存，方便下一次查询
	if q == "" && a.rdb != nil {
		if cacheBytes, err := json.Marshal(contacts); err != nil {
			a.l.Error("failed to marshal contact list", zap.Error(err))
		} else {
			a.rdb.Set(rctx, constants.CacheKeyContactList, cacheBytes, constants.CacheExpireContactList)
		}
	}

	return c.Render(http.StatusOK, "home.html", map[string]any{
		"Contacts": contacts,
		"Q":        q,
	})
}

func (a *App) ContactCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 先建一条空记录，跳去编辑页补全
	contact := models.Contact{}
	if err := a.db.CreateContact(rctx, &contact); err != nil {
		a.l.Error("failed to create contact", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateContactCache(rctx)

	return c.Redirect(http.StatusFound, fmt.Sprintf("/contacts/%d/edit", contact.ID))
}

func (a *App) ContactView(c echo.Context) error {
	id, err := a.contactID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	contact, err := a.db.FindContact(rctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to find contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "contact.html", map[string]any{
		"Contact": contact,
	})
}

func (a *App) ContactEditForm(c echo.Context) error {
	id, err := a.contactID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	contact, err := a.db.FindContact(rctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to find contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Render(http.StatusOK, "contact_edit.html", map[string]any{
		"Contact": contact,
	})
}

func (a *App) ContactEdit(c echo.Context) error {
	id, err := a.contactID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	contact, err := a.db.FindContact(rctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to find contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 绑定表单
	contact.First = c.FormValue("first")
	contact.Last = c.FormValue("last")
	contact.Twitter = c.FormValue("twitter")
	contact.Avatar = c.FormValue("avatar")
	contact.Notes = c.FormValue("notes")

	if err := a.db.UpdateContact(rctx, contact); err != nil {
		a.l.Error("failed to update contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateContactCache(rctx)

	return c.Redirect(http.StatusFound, fmt.Sprintf("/contacts/%d", contact.ID))
}

func (a *App) ContactFavorite(c echo.Context) error {
	id, err := a.contactID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	contact, err := a.db.FindContact(rctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to find contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	contact.Favorite = c.FormValue("favorite") == "true"

	if err := a.db.UpdateContact(rctx, contact); err != nil {
		a.l.Error("failed to update contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateContactCache(rctx)

	return c.Redirect(http.StatusFound, fmt.Sprintf("/contacts/%d", contact.ID))
}

func (a *App) ContactDelete(c echo.Context) error {
	id, err := a.contactID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	if err := a.db.DeleteContact(rctx, id); err != nil {
		a.l.Error("failed to delete contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.invalidateContactCache(rctx)

	return c.Redirect(http.StatusFound, "/")
}

// contactID 提取路径中的联系人 ID
func (a *App) contactID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(idUint64), nil
}

// invalidateContactCache 联系人有增删改时让列表缓存失效
func (a *App) invalidateContactCache(ctx context.Context) {
	if a.rdb != nil {
		a.rdb.Del(ctx, constants.CacheKeyContactList)
	}
}
