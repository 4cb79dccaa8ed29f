package constants

import "time"

const (
	// SessionCookieName 会话 cookie 名称
	SessionCookieName = "__session"

	// SessionKeyUserID 会话中保存身份键的字段名
	SessionKeyUserID = "userId"

	// SessionDuration 会话有效期
	SessionDuration = 7 * 24 * time.Hour
)
