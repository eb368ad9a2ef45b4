package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IssuesCookieForNewVisitor(t *testing.T) {
	var gotID string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flow/centers", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, gotID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, gotID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReusesExistingCookie(t *testing.T) {
	var gotID string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flow/centers", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "existing-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "existing-session", gotID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, SessionID(req.Context()))
}
