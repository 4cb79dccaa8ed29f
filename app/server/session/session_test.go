package session

import (
	"employee-contacts/app/server/constants"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testKey = "test-session-secret"

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: value})
	}
	return req
}

func TestNew(t *testing.T) {
	t.Run("空密钥拒绝初始化", func(t *testing.T) {
		if _, err := New("", false); err == nil {
			t.Fatal("expected error for empty key")
		}
	})

	t.Run("正常初始化", func(t *testing.T) {
		if _, err := New(testKey, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRoundtrip(t *testing.T) {
	sc, err := New(testKey, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess := Session{}
	sess.SetLoginID(42)

	cookie, err := sc.Cookie(sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded := sc.Decode(requestWithCookie(cookie.Value))
	id, ok := decoded.LoginID()
	if !ok {
		t.Fatal("expected login id in decoded session")
	}
	if id != 42 {
		t.Errorf("LoginID = %d, want 42", id)
	}
}

func TestDecodeFailSoft(t *testing.T) {
	sc, err := New(testKey, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 用别的密钥签出的 cookie
	otherSc, err := New("another-secret", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	otherSess := Session{}
	otherSess.SetLoginID(7)
	otherCookie, err := otherSc.Cookie(otherSess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 已过期的 token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constants.SessionKeyUserID: 42,
		"exp":                      time.Now().Add(-time.Hour).Unix(),
	})
	expiredValue, err := expiredToken.SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"缺失的 cookie", ""},
		{"乱码", "not-a-jwt"},
		{"签名不一致", otherCookie.Value},
		{"已过期", expiredValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := sc.Decode(requestWithCookie(tt.value))
			if _, ok := sess.LoginID(); ok {
				t.Error("expected empty session without login id")
			}
			if len(sess) != 0 {
				t.Errorf("expected empty session, got %v", sess)
			}
		})
	}
}

func TestCookieAttributes(t *testing.T) {
	t.Run("固定属性", func(t *testing.T) {
		sc, err := New(testKey, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cookie, err := sc.Cookie(Session{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cookie.Name != "__session" {
			t.Errorf("Name = %q, want __session", cookie.Name)
		}
		if cookie.Path != "/" {
			t.Errorf("Path = %q, want /", cookie.Path)
		}
		if !cookie.HttpOnly {
			t.Error("expected HttpOnly")
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Errorf("SameSite = %v, want Lax", cookie.SameSite)
		}
		if cookie.Secure {
			t.Error("Secure should be off outside production")
		}
	})

	t.Run("生产环境开启 Secure", func(t *testing.T) {
		sc, err := New(testKey, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cookie, err := sc.Cookie(Session{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cookie.Secure {
			t.Error("expected Secure in production")
		}
	})
}

func TestExpired(t *testing.T) {
	sc, err := New(testKey, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cookie := sc.Expired()
	if cookie.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Errorf("Value = %q, want empty", cookie.Value)
	}
}
