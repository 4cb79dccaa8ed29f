package session

import (
	"employee-contacts/app/server/constants"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec 负责把会话数据编码成签名后的 __session cookie ，以及从请求中解码还原。
// 会话完全保存在客户端，服务端不存任何会话状态。
type Codec struct {
	key    []byte
	secure bool
}

// Session 会话数据包，身份键通过 LoginID / SetLoginID 存取
type Session map[string]any

func New(key string, secure bool) (*Codec, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &Codec{key: []byte(key), secure: secure}, nil
}

// Decode 从请求中还原会话。cookie 缺失、格式错误、签名无效、已过期都视同空会话，
// 不返回错误：对上层来说这些情况都等价于未登录。
func (sc *Codec) Decode(r *http.Request) Session {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return Session{}
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		return sc.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return Session{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}
	}

	// 映射字段，过期时间不属于会话数据
	sess := Session{}
	for k, v := range claims {
		if k == "exp" {
			continue
		}
		sess[k] = v
	}

	return sess
}

// Cookie 签名会话并产生 Set-Cookie 用的 cookie 。属性是固定策略，不开放给调用方。
func (sc *Codec) Cookie(sess Session) (*http.Cookie, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"exp": time.Now().Add(constants.SessionDuration).Unix(),
	}
	for k, v := range sess {
		claims[k] = v
	}

	// 签名
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	value, err := token.SignedString(sc.key)
	if err != nil {
		return nil, fmt.Errorf("sign session failed: %w", err)
	}

	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(constants.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   sc.secure,
	}, nil
}

// Expired 产生立即过期的 cookie ，用于注销
func (sc *Codec) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   sc.secure,
	}
}

// LoginID 提取身份键。JWT 的 JSON 解码会把数字变成 float64 ，这里统一兜回 uint 。
func (s Session) LoginID() (uint, bool) {
	switch v := s[constants.SessionKeyUserID].(type) {
	case float64:
		if v > 0 {
			return uint(v), true
		}
	case uint:
		if v > 0 {
			return v, true
		}
	case int:
		if v > 0 {
			return uint(v), true
		}
	}
	return 0, false
}

func (s Session) SetLoginID(id uint) {
	s[constants.SessionKeyUserID] = id
}
