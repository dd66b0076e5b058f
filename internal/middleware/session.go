package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"blogfront/internal/logger"
	"blogfront/internal/reqctx"
	"blogfront/internal/session"
)

// Session читает токен из cookie и кладёт его в контекст запроса.
// Дальше токен видит только repository.Client.
func Session(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := m.Token(r); token != "" {
				r = r.WithContext(reqctx.WithToken(r.Context(), token))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession пускает только при наличии токена, иначе отправляет на
// /login?next=<текущий путь>. Срок действия токена не проверяется.
// ДОЛЖЕН стоять ПОСЛЕ Session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqctx.Authenticated(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}

		logger.WithCtx(r.Context()).Info("session: нет токена, редирект на вход")

		target := "/login"
		if r.Method == http.MethodGet {
			target += "?next=" + url.QueryEscape(r.URL.RequestURI())
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}

// SafeNext оставляет только локальные пути, чтобы ?next= нельзя было
// использовать для редиректа на чужой сайт.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
