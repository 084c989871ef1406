package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/model"
	"github.com/devfolio/devfolio/internal/session"
	"github.com/devfolio/devfolio/pkg/apperror"
	"github.com/gin-gonic/gin"
)

type mockAuthService struct {
	signupFn func(ctx context.Context, input dto.SignupInput) (*model.User, error)
	verifyFn func(ctx context.Context, userID, password string) (*model.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, input dto.SignupInput) (*model.User, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, input)
	}
	return nil, nil
}

func (m *mockAuthService) Verify(ctx context.Context, userID, password string) (*model.User, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, userID, password)
	}
	return nil, apperror.ErrInvalidCredentials
}

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", h.Logout)
	router.GET("/api/auth/session", h.Session)
	return router
}

func TestLoginSetsSessionCookie(t *testing.T) {
	svc := &mockAuthService{
		verifyFn: func(ctx context.Context, userID, password string) (*model.User, error) {
			if userID == "josh" && password == "secret" {
				return &model.User{ID: "josh", Username: "Josh"}, nil
			}
			return nil, apperror.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"userId":"josh","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("admin_session cookie not set")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path %q, want /", cookie.Path)
	}
	if cookie.MaxAge != 24*60*60 {
		t.Errorf("cookie max-age %d, want 1 day", cookie.MaxAge)
	}

	// gin URL-escapes cookie values on write.
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		t.Fatalf("unescape cookie: %v", err)
	}
	s, err := session.Decode(value)
	if err != nil {
		t.Fatalf("cookie is not a decodable session: %v", err)
	}
	if s.UserID != "josh" || s.Password != "secret" {
		t.Errorf("unexpected session payload: %+v", s)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"userId":"nobody","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid ID or password") {
		t.Errorf("expected generic message, got %s", w.Body.String())
	}
}

func TestSessionReverifiesCookie(t *testing.T) {
	svc := &mockAuthService{
		verifyFn: func(ctx context.Context, userID, password string) (*model.User, error) {
			if userID == "josh" && password == "secret" {
				return &model.User{ID: "josh", Username: "Josh"}, nil
			}
			return nil, apperror.ErrInvalidCredentials
		},
	}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: url.QueryEscape(session.Encode(session.Session{UserID: "josh", Username: "Josh", Password: "secret"})),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestSessionRejectsStaleCookie(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: url.QueryEscape(session.Encode(session.Session{UserID: "josh", Password: "old-password"})),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}

	// The stale cookie is cleared.
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			t.Errorf("stale cookie was not cleared: %+v", c)
		}
	}
}

func TestSessionWithoutCookie(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newAuthRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", w.Code)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be expired")
	}
}
