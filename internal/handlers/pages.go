package handlers

import (
	"net/http"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/reqctx"
	"blogfront/internal/session"
	"blogfront/internal/views"

	"go.uber.org/zap"
)

// Pages собирает общую часть страницы (навбар, flash) и рендерит шаблон.
type Pages struct {
	views *views.Renderer
	sess  *session.Manager
}

func NewPages(v *views.Renderer, sess *session.Manager) *Pages {
	return &Pages{views: v, sess: sess}
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	ctx := r.Context()
	notices, errs := p.sess.Flashes(w, r)

	page := views.Page{
		Title:         title,
		Authenticated: reqctx.Authenticated(ctx),
		Identity:      session.Identity(reqctx.Token(ctx)),
		Notices:       notices,
		Errors:        errs,
		Data:          data,
	}
	if err := p.views.Render(w, status, name, page); err != nil {
		logger.WithCtx(ctx).Error("render: ошибка шаблона", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (p *Pages) renderError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	p.render(w, r, failureStatus(err), "error", "Error", views.ErrorData{Message: apperr.UserMessage(err, fallback)})
}

// redirect показывает Result на следующей странице.
func (p *Pages) redirect(w http.ResponseWriter, r *http.Request, to string, res apperr.Result) {
	var err error
	switch {
	case res.Message == "":
	case res.OK:
		err = p.sess.AddNotice(w, r, res.Message)
	default:
		err = p.sess.AddError(w, r, res.Message)
	}
	if err != nil {
		logger.WithCtx(r.Context()).Warn("session: flash не сохранён", zap.Error(err))
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// failureStatus — код ответа для страницы с ошибкой.
func failureStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindRejected:
		if s := apperr.StatusOf(err); s >= 400 && s < 500 {
			return s
		}
	}
	return http.StatusBadGateway
}

// gone — клиент ушёл, пока ждали API: отвечать уже некому.
func gone(r *http.Request, err error) bool {
	return apperr.Canceled(err) && r.Context().Err() != nil
}
