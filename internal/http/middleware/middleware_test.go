package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"umrah/internal/domain"

	"github.com/gin-gonic/gin"
)

type stubParser map[string]domain.RequestContext

func (s stubParser) ParseToken(raw string) (domain.RequestContext, error) {
	if rc, ok := s[raw]; ok {
		return rc, nil
	}
	return domain.RequestContext{}, errors.New("unknown token")
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p := stubParser{
		"admin":     {UserID: 1, Role: domain.RoleAdmin},
		"traveller": {UserID: 7, Role: domain.RoleTraveller},
	}
	r.Use(RequestID(), Session(p))
	r.GET("/x", append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, GetSession(c))
	})...)
	return r
}

func call(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAndRoles(t *testing.T) {
	open := newEngine()
	adminOnly := newEngine(RequireAdmin())
	loggedIn := newEngine(RequireLogin())

	cases := []struct {
		name string
		r    *gin.Engine
		auth string
		want int
	}{
		{"visitor on open route", open, "", http.StatusOK},
		{"bad scheme", open, "Basic abc", http.StatusUnauthorized},
		{"unknown token", open, "Bearer nope", http.StatusUnauthorized},
		{"visitor on login route", loggedIn, "", http.StatusUnauthorized},
		{"traveller on login route", loggedIn, "Bearer traveller", http.StatusOK},
		{"traveller on admin route", adminOnly, "Bearer traveller", http.StatusForbidden},
		{"admin on admin route", adminOnly, "Bearer admin", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := call(tc.r, tc.auth); w.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	r := newEngine()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}

type stubAccounts map[int64]domain.Role

func (s stubAccounts) CurrentRole(_ context.Context, userID int64) (domain.Role, error) {
	if userID == 500 {
		return domain.RoleVisitor, errors.New("connection refused")
	}
	if role, ok := s[userID]; ok {
		return role, nil
	}
	return domain.RoleVisitor, domain.NotFoundError{Resource: "user"}
}

func TestRecheckAdminUsesStoredRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p := stubParser{
		"admin":     {UserID: 1, Role: domain.RoleAdmin},
		"demoted":   {UserID: 2, Role: domain.RoleAdmin},
		"deleted":   {UserID: 3, Role: domain.RoleAdmin},
		"broken":    {UserID: 500, Role: domain.RoleAdmin},
		"traveller": {UserID: 7, Role: domain.RoleTraveller},
	}
	accounts := stubAccounts{1: domain.RoleAdmin, 2: domain.RoleTraveller}
	r.Use(RequestID(), Session(p))
	r.GET("/x", RecheckAdmin(accounts), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		auth string
		want int
	}{
		{"Bearer admin", http.StatusOK},
		{"Bearer demoted", http.StatusForbidden},
		{"Bearer deleted", http.StatusUnauthorized},
		{"Bearer broken", http.StatusInternalServerError},
		{"Bearer traveller", http.StatusForbidden},
		{"", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.auth, func(t *testing.T) {
			if w := call(r, tc.auth); w.Code != tc.want {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}
