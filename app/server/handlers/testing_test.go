package handlers

import (
	"context"
	"employee-contacts/app/server/database"
	"employee-contacts/app/server/models"
	"employee-contacts/app/server/session"
	"employee-contacts/app/server/views"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// fakeStore 内存版 Store ，handler 测试不需要真实数据库
type fakeStore struct {
	logins      map[uint]*models.LoginInfo
	profiles    []*models.UserInfo
	contacts    map[uint]*models.Contact
	nextLoginID uint
	nextID      uint
}

var _ database.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		logins:   map[uint]*models.LoginInfo{},
		contacts: map[uint]*models.Contact{},
	}
}

func (f *fakeStore) FindLoginByEmail(_ context.Context, email string) (*models.LoginInfo, error) {
	for _, login := range f.logins {
		if login.Email == email && !login.IsDeleted {
			cp := *login
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) InsertLogin(_ context.Context, login *models.LoginInfo) error {
	for _, existing := range f.logins {
		if existing.Email == login.Email && !existing.IsDeleted {
			return database.ErrDuplicateEmail
		}
	}
	f.nextLoginID++
	login.LoginID = f.nextLoginID
	cp := *login
	f.logins[login.LoginID] = &cp
	return nil
}

func (f *fakeStore) FindProfileByLoginID(_ context.Context, loginID uint) (*models.UserInfo, error) {
	for _, profile := range f.profiles {
		if profile.LoginID == loginID && !profile.IsDeleted {
			cp := *profile
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) InsertProfile(_ context.Context, profile *models.UserInfo) error {
	f.nextID++
	profile.ID = f.nextID
	cp := *profile
	f.profiles = append(f.profiles, &cp)
	return nil
}

func (f *fakeStore) ListContacts(_ context.Context, q string) ([]models.Contact, error) {
	var contacts []models.Contact
	for id := uint(1); id <= f.nextID; id++ {
		contact, ok := f.contacts[id]
		if !ok {
			continue
		}
		if q != "" {
			lowered := strings.ToLower(q)
			if !strings.Contains(strings.ToLower(contact.First), lowered) &&
				!strings.Contains(strings.ToLower(contact.Last), lowered) {
				continue
			}
		}
		contacts = append(contacts, *contact)
	}
	return contacts, nil
}

func (f *fakeStore) FindContact(_ context.Context, id uint) (*models.Contact, error) {
	contact, ok := f.contacts[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *contact
	return &cp, nil
}

func (f *fakeStore) CreateContact(_ context.Context, contact *models.Contact) error {
	f.nextID++
	contact.ID = f.nextID
	cp := *contact
	f.contacts[contact.ID] = &cp
	return nil
}

func (f *fakeStore) UpdateContact(_ context.Context, contact *models.Contact) error {
	if _, ok := f.contacts[contact.ID]; !ok {
		return database.ErrNotFound
	}
	cp := *contact
	f.contacts[contact.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteContact(_ context.Context, id uint) error {
	delete(f.contacts, id)
	return nil
}

// newTestApp 组装测试用的 App 与 echo 实例，不带 redis
func newTestApp(t *testing.T, store database.Store) (*App, *echo.Echo) {
	t.Helper()

	sc, err := session.New("test-session-secret", false)
	if err != nil {
		t.Fatalf("failed to init session codec: %v", err)
	}

	renderer, err := views.New()
	if err != nil {
		t.Fatalf("failed to init renderer: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer

	return NewApp(zap.NewNop(), store, nil, sc), e
}

// sessionCookie 签出带身份键的会话 cookie
func sessionCookie(t *testing.T, a *App, loginID uint) *http.Cookie {
	t.Helper()

	sess := session.Session{}
	sess.SetLoginID(loginID)
	cookie, err := a.sc.Cookie(sess)
	if err != nil {
		t.Fatalf("failed to sign session cookie: %v", err)
	}
	return cookie
}

// doForm 发起表单 POST 请求
func doForm(e *echo.Echo, target string, form url.Values, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// doGet 发起 GET 请求
func doGet(e *echo.Echo, target string, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get(echo.HeaderLocation); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}
