// Package session хранит bearer-токен на стороне клиента: в подписанной
// cookie под ключом "token". Здесь же flash-сообщения между редиректами.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "blog_session"
	tokenKey   = "token"

	flashNotice = "notice"
	flashError  = "error"
)

type Manager struct {
	store sessions.Store
}

func NewManager(secret []byte, maxAge time.Duration, secure bool) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store}
}

// NewManagerWithStore — для тестов и альтернативных хранилищ.
func NewManagerWithStore(store sessions.Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Битая или чужая cookie — просто новая пустая сессия.
	sess, _ := m.store.Get(r, cookieName)
	return sess
}

// Token возвращает сохранённый токен или "".
func (m *Manager) Token(r *http.Request) string {
	token, _ := m.get(r).Values[tokenKey].(string)
	return token
}

// SetToken сохраняет токен после успешного входа.
func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess := m.get(r)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// Clear удаляет токен (выход). Flash-сообщения переживают выход.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess := m.get(r)
	delete(sess.Values, tokenKey)
	return sess.Save(r, w)
}

func (m *Manager) AddNotice(w http.ResponseWriter, r *http.Request, msg string) error {
	return m.addFlash(w, r, msg, flashNotice)
}

func (m *Manager) AddError(w http.ResponseWriter, r *http.Request, msg string) error {
	return m.addFlash(w, r, msg, flashError)
}

func (m *Manager) addFlash(w http.ResponseWriter, r *http.Request, msg, kind string) error {
	sess := m.get(r)
	sess.AddFlash(msg, kind)
	return sess.Save(r, w)
}

// Flashes забирает (и удаляет) накопленные сообщения.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) (notices, errs []string) {
	sess := m.get(r)
	notices = toStrings(sess.Flashes(flashNotice))
	errs = toStrings(sess.Flashes(flashError))
	if len(notices) > 0 || len(errs) > 0 {
		_ = sess.Save(r, w)
	}
	return notices, errs
}

func toStrings(vals []interface{}) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Identity достаёт имя пользователя из токена для навбара, если токен — JWT.
// Подпись и срок не проверяются: это только подпись в шапке, доступ
// определяет сервер.
func Identity(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, k := range []string{"username", "name", "email", "sub"} {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
