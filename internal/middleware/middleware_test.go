package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studentdrop/internal/model"
	"studentdrop/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	ts := service.NewTokenService("testsecret")
	bl := service.NoopBlacklist{}

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx, ts, bl)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, ts, bl)
	require.Error(t, err)

	// lowercase prefix is not accepted
	ctx, _ = newContext("bearer sometoken")
	_, err = extractClaims(ctx, ts, bl)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, ts, bl)
	require.Error(t, err)

	// tampered token
	tok, err := ts.Issue(model.User{ID: 1, Email: "a@x.com", Role: model.RoleStudent}, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + tok[:len(tok)-2] + "xx")
	_, err = extractClaims(ctx, ts, bl)
	require.Error(t, err)

	// valid token
	ctx, _ = newContext("Bearer " + tok)
	claims, err := extractClaims(ctx, ts, bl)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, model.RoleStudent, claims.Role)
}

func TestRequireAuth(t *testing.T) {
	ts := service.NewTokenService("secret")
	bl := service.NoopBlacklist{}
	tok, err := ts.Issue(model.User{ID: 2, Role: model.RoleStudent}, time.Minute)
	require.NoError(t, err)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(ts, bl)(func(c echo.Context) error {
		called = true
		cl := c.Get(ContextUserKey).(*service.Claims)
		require.Equal(t, 2, cl.UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(ts, bl)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

type fakeBlacklist struct {
	revoked bool
	err     error
}

func (f *fakeBlacklist) Revoke(context.Context, string, time.Duration) error { return nil }

func (f *fakeBlacklist) IsRevoked(context.Context, string) (bool, error) { return f.revoked, f.err }

func TestRequireAuthRevoked(t *testing.T) {
	ts := service.NewTokenService("secret")
	tok, err := ts.Issue(model.User{ID: 9, Role: model.RoleStudent}, time.Hour)
	require.NoError(t, err)

	// 有效令牌但已列入黑名單 → 401
	c := &fakeBlacklist{revoked: true}
	ctx, _ := newContext("Bearer " + tok)
	called := false
	err = RequireAuth(ts, c)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	require.False(t, called)

	// 黑名單查詢失敗同樣拒絕
	ctx, _ = newContext("Bearer " + tok)
	err = RequireAuth(ts, &fakeBlacklist{err: context.DeadlineExceeded})(func(echo.Context) error { return nil })(ctx)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestRequireRole(t *testing.T) {
	ts := service.NewTokenService("rolesecret")
	bl := service.NoopBlacklist{}
	adminTok, err := ts.Issue(model.User{ID: 3, Role: model.RoleAdmin}, time.Minute)
	require.NoError(t, err)
	studentTok, err := ts.Issue(model.User{ID: 4, Role: model.RoleStudent}, time.Minute)
	require.NoError(t, err)

	adminOnly := func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(ts, bl)(RequireRole(model.RoleAdmin)(next))
	}

	// admin ok
	ctx, rec := newContext("Bearer " + adminTok)
	called := false
	err = adminOnly(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// student should get 403
	ctx, _ = newContext("Bearer " + studentTok)
	called = false
	err = adminOnly(func(c echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	require.False(t, called)

	// without RequireAuth no identity is attached → 401
	ctx, _ = newContext("")
	called = false
	err = RequireRole(model.RoleAdmin)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	require.False(t, called)

	// multiple allowed roles
	mentorTok, err := ts.Issue(model.User{ID: 5, Role: model.RoleMentor}, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + mentorTok)
	called = false
	err = RequireAuth(ts, bl)(RequireRole(model.RoleAdmin, model.RoleMentor)(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	}))(ctx)
	require.NoError(t, err)
	require.True(t, called)
}
