package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() *Manager {
	return NewManager([]byte("test-secret-test-secret-test-sec"), time.Hour, false)
}

// carry переносит Set-Cookie из ответа в следующий запрос, как это делает браузер.
func carry(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager_TokenLifecycle(t *testing.T) {
	m := newManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, m.Token(req), "без cookie токена нет")

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetToken(rec, req, "tok-1"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next := carry(t, rec)
	assert.Equal(t, "tok-1", m.Token(next))

	rec = httptest.NewRecorder()
	require.NoError(t, m.Clear(rec, next))
	assert.Empty(t, m.Token(carry(t, rec)))
}

func TestManager_TamperedCookie(t *testing.T) {
	m := newManager()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "garbage"})
	assert.Empty(t, m.Token(req))
}

func TestManager_Flashes(t *testing.T) {
	m := newManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, m.AddError(rec, req, "Failed to delete blog post."))

	next := carry(t, rec)
	rec = httptest.NewRecorder()
	notices, errs := m.Flashes(rec, next)
	assert.Empty(t, notices)
	assert.Equal(t, []string{"Failed to delete blog post."}, errs)

	// сообщения показываются один раз
	notices, errs = m.Flashes(httptest.NewRecorder(), carry(t, rec))
	assert.Empty(t, notices)
	assert.Empty(t, errs)
}

func TestIdentity(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "gopher",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	assert.Equal(t, "gopher", Identity(signed), "просроченный токен всё равно читается")
	assert.Equal(t, "", Identity("opaque-token"))
	assert.Equal(t, "", Identity(""))

	emailOnly, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.c"}).SignedString([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", Identity(emailOnly))
}
