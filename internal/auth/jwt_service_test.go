package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestService() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenService_RoundTrip(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name   string
		issue  func(userID, email, role string) (string, error)
		verify func(token string) (*Claims, error)
	}{
		{"access", s.IssueAccess, s.VerifyAccess},
		{"refresh", s.IssueRefresh, s.VerifyRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.issue("member-1", "jane@x.com", RoleMember)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := tt.verify(token)
			assert.NoError(t, err)
			assert.Equal(t, "member-1", claims.UserID)
			assert.Equal(t, "jane@x.com", claims.Email)
			assert.Equal(t, RoleMember, claims.Role)
		})
	}
}

func TestTokenService_CrossKindRejection(t *testing.T) {
	s := newTestService()

	accessToken, err := s.IssueAccess("member-1", "jane@x.com", RoleMember)
	assert.NoError(t, err)
	refreshToken, err := s.IssueRefresh("member-1", "jane@x.com", RoleMember)
	assert.NoError(t, err)

	// A token of one kind must not verify against the other kind's secret.
	_, err = s.VerifyRefresh(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = s.VerifyAccess(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Expired(t *testing.T) {
	// Negative lifetime issues tokens that are already past expiry.
	s := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, err := s.IssueAccess("member-1", "jane@x.com", RoleMember)
	assert.NoError(t, err)

	_, err = s.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	s := NewTokenService("access-secret", "refresh-secret", 150*time.Millisecond, time.Hour)

	token, err := s.IssueAccess("member-1", "jane@x.com", RoleMember)
	assert.NoError(t, err)

	// Before expiry the token verifies.
	_, err = s.VerifyAccess(token)
	assert.NoError(t, err)

	// jwt/v4 allows no leeway by default, so past expiry it fails.
	time.Sleep(300 * time.Millisecond)
	_, err = s.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_InvalidTokens(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"wrong secret", mustIssue(t, NewTokenService("other-secret", "refresh-secret", time.Minute, time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.VerifyAccess(tt.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func mustIssue(t *testing.T, s *TokenService) string {
	t.Helper()
	token, err := s.IssueAccess("member-1", "jane@x.com", RoleMember)
	assert.NoError(t, err)
	return token
}
