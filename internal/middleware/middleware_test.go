package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogfront/internal/reqctx"
	"blogfront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("token=" + reqctx.Token(r.Context())))
}

func TestRequireSession_RedirectsWithoutToken(t *testing.T) {
	h := RequireSession(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/edit/42", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fedit%2F42", rec.Header().Get("Location"))
}

func TestRequireSession_PostRedirectsToPlainLogin(t *testing.T) {
	h := RequireSession(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionAndGate_PassWithToken(t *testing.T) {
	m := session.NewManager([]byte("test-secret"), time.Hour, false)

	// логинимся, чтобы получить cookie
	setRec := httptest.NewRecorder()
	require.NoError(t, m.SetToken(setRec, httptest.NewRequest(http.MethodGet, "/", nil), "expired-but-present"))

	req := httptest.NewRequest(http.MethodGet, "/create", nil)
	for _, c := range setRec.Result().Cookies() {
		req.AddCookie(c)
	}

	h := Session(m)(RequireSession(http.HandlerFunc(okHandler)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token=expired-but-present", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = reqctx.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "from-proxy")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "from-proxy", seen)
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/edit/1", SafeNext("/edit/1"))
	assert.Equal(t, "/", SafeNext(""))
	assert.Equal(t, "/", SafeNext("https://evil.test"))
	assert.Equal(t, "/", SafeNext("//evil.test"))
	assert.Equal(t, "/", SafeNext(`/\evil.test`))
}
