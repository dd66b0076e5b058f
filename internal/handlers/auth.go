package handlers

import (
	"net/http"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/middleware"
	"blogfront/internal/models"
	"blogfront/internal/services"
	"blogfront/internal/session"
	"blogfront/internal/views"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth  *services.AuthService
	sess  *session.Manager
	pages *Pages
}

func NewAuthHandler(auth *services.AuthService, sess *session.Manager, pages *Pages) *AuthHandler {
	return &AuthHandler{auth: auth, sess: sess, pages: pages}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "login", "Login", views.LoginData{Next: r.URL.Query().Get("next")})
}

// Login сохраняет токен сервера в сессии и возвращает туда, откуда
// отправил на вход шлюз.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	next := r.PostFormValue("next")

	token, err := h.auth.Login(r.Context(), email, r.PostFormValue("password"))
	if err != nil {
		if gone(r, err) {
			return
		}
		h.pages.render(w, r, failureStatus(err), "login", "Login", views.LoginData{
			Email: email,
			Next:  next,
			Error: apperr.UserMessage(err, "Invalid email or password."),
		})
		return
	}

	if err := h.sess.SetToken(w, r, token); err != nil {
		logger.WithCtx(r.Context()).Error("session: токен не сохранён", zap.Error(err))
		h.pages.render(w, r, http.StatusInternalServerError, "login", "Login", views.LoginData{
			Email: email,
			Next:  next,
			Error: "Could not start a session. Please try again.",
		})
		return
	}

	http.Redirect(w, r, middleware.SafeNext(next), http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, "register", "Register", views.RegisterData{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := models.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if err := h.auth.Register(r.Context(), req); err != nil {
		if gone(r, err) {
			return
		}
		h.pages.render(w, r, failureStatus(err), "register", "Register", views.RegisterData{
			Username: req.Username,
			Email:    req.Email,
			Error:    apperr.UserMessage(err, "Registration failed. Please try again."),
		})
		return
	}

	h.pages.redirect(w, r, "/login", apperr.Success("Registration successful. Please log in."))
}

// Logout только забывает токен: на сервере сессий нет.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Clear(w, r); err != nil {
		logger.WithCtx(r.Context()).Warn("session: не удалось очистить", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
