package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"gymhub/internal/auth"
)

func newTestTokens() *auth.TokenService {
	return auth.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func newProtectedEcho(tokens *auth.TokenService, roles ...string) *echo.Echo {
	e := echo.New()
	mws := []echo.MiddlewareFunc{Authenticate(tokens)}
	if len(roles) > 0 {
		mws = append(mws, RequireRole(roles...))
	}
	g := e.Group("/protected", mws...)
	g.GET("", func(c echo.Context) error {
		claims, ok := CurrentUser(c)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "no identity")
		}
		return c.String(http.StatusOK, claims.Email)
	})
	return e
}

func doRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	tokens := newTestTokens()
	expiredTokens := auth.NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	validToken, err := tokens.IssueAccess("member-1", "jane@x.com", auth.RoleMember)
	assert.NoError(t, err)
	expiredToken, err := expiredTokens.IssueAccess("member-1", "jane@x.com", auth.RoleMember)
	assert.NoError(t, err)
	foreignToken, err := auth.NewTokenService("other-secret", "refresh-secret", time.Minute, time.Minute).
		IssueAccess("member-1", "jane@x.com", auth.RoleMember)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedBody   string
	}{
		{"missing token", "", http.StatusUnauthorized, "access token required"},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, "access token expired"},
		{"bad signature", "Bearer " + foreignToken, http.StatusForbidden, "invalid access token"},
		{"malformed token", "Bearer not-a-token", http.StatusForbidden, "invalid access token"},
		{"valid token", "Bearer " + validToken, http.StatusOK, "jane@x.com"},
	}

	e := newProtectedEcho(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.authorization)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := newTestTokens()

	memberToken, err := tokens.IssueAccess("member-1", "jane@x.com", auth.RoleMember)
	assert.NoError(t, err)
	trainerToken, err := tokens.IssueAccess("trainer-1", "john.trainer@gym.com", auth.RoleTrainer)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		allowedRoles   []string
		token          string
		expectedStatus int
	}{
		{"member admitted to member route", []string{auth.RoleMember}, memberToken, http.StatusOK},
		{"trainer rejected from member route", []string{auth.RoleMember}, trainerToken, http.StatusForbidden},
		{"trainer admitted to trainer route", []string{auth.RoleTrainer}, trainerToken, http.StatusOK},
		{"member rejected from trainer route", []string{auth.RoleTrainer}, memberToken, http.StatusForbidden},
		{"either role admitted", []string{auth.RoleMember, auth.RoleTrainer}, memberToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newProtectedEcho(tokens, tt.allowedRoles...)
			rec := doRequest(e, "Bearer "+tt.token)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "access denied, required role")
			}
		})
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	// RequireRole without Authenticate in front rejects outright.
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireRole(auth.RoleMember))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")
}
