package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/models"
	"blogfront/internal/services"
	"blogfront/internal/views"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BlogHandler struct {
	blogs    *services.BlogService
	comments *services.CommentService
	pages    *Pages
}

func NewBlogHandler(blogs *services.BlogService, comments *services.CommentService, pages *Pages) *BlogHandler {
	return &BlogHandler{blogs: blogs, comments: comments, pages: pages}
}

func viewPath(id string) string {
	return "/view/" + url.PathEscape(id)
}

// Home — лента с фильтром из query (?q=&category=&tag=).
func (h *BlogHandler) Home(w http.ResponseWriter, r *http.Request) {
	f := models.ParseFilter(r.URL.Query())
	data := views.HomeData{Filter: f, Categories: views.HomeCategories()}

	listing, err := h.blogs.List(r.Context(), f)
	if gone(r, err) {
		return
	}
	if err != nil {
		data.Error = apperr.UserMessage(err, "Failed to load blogs.")
	} else {
		data.Posts = listing.Visible
		data.Total = listing.Total
	}

	h.pages.render(w, r, http.StatusOK, "home", "", data)
}

// View — пост и комментарии, загружаются параллельно. Ошибка комментариев
// не ломает страницу, ошибка поста — ломает и отменяет загрузку комментариев.
func (h *BlogHandler) View(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var (
		post        *models.BlogPost
		comments    []models.Comment
		commentsErr error
	)

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		post, err = h.blogs.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		comments, commentsErr = h.comments.List(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		if gone(r, err) {
			return
		}
		h.pages.renderError(w, r, err, "Failed to fetch blog post.")
		return
	}

	data := views.ViewData{
		Post:          *post,
		ContentHTML:   template.HTML(h.blogs.ContentHTML(post.Content)), // очищено bluemonday
		Comments:      comments,
		ConfirmDelete: r.URL.Query().Get("confirm") == "delete",
	}
	if commentsErr != nil {
		data.CommentsError = apperr.UserMessage(commentsErr, "Failed to load comments.")
	}

	h.pages.render(w, r, http.StatusOK, "view", post.Title, data)
}

// Delete выполняется после подтверждения на странице поста.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.blogs.Delete(r.Context(), id); err != nil {
		if gone(r, err) {
			return
		}
		h.pages.redirect(w, r, viewPath(id), apperr.Failure(err, "Failed to delete blog. Please try again."))
		return
	}
	h.pages.redirect(w, r, "/", apperr.Success("Blog deleted."))
}

func (h *BlogHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, h.formData(false, "", blogForm{}))
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.renderError(w, r, apperr.Validation("Invalid form."), "")
		return
	}

	form := parseBlogForm(r)
	if !form.apply(r) {
		h.renderForm(w, r, http.StatusOK, h.formData(false, "", form))
		return
	}

	if _, err := h.blogs.Create(r.Context(), form.input); err != nil {
		if gone(r, err) {
			return
		}
		data := h.formData(false, "", form)
		data.Error = apperr.UserMessage(err, "Failed to create blog. Please try again.")
		h.renderForm(w, r, failureStatus(err), data)
		return
	}

	h.pages.redirect(w, r, "/", apperr.Success("Blog created."))
}

func (h *BlogHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.blogs.Get(r.Context(), id)
	if err != nil {
		if gone(r, err) {
			return
		}
		data := h.formData(true, id, blogForm{})
		data.LoadFailed = true
		data.Error = apperr.UserMessage(err, "Failed to fetch blog post. Please try again.")
		h.renderForm(w, r, failureStatus(err), data)
		return
	}

	h.renderForm(w, r, http.StatusOK, h.formData(true, id, blogForm{input: post.Input()}))
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		h.pages.renderError(w, r, apperr.Validation("Invalid form."), "")
		return
	}

	form := parseBlogForm(r)
	if !form.apply(r) {
		h.renderForm(w, r, http.StatusOK, h.formData(true, id, form))
		return
	}

	if _, err := h.blogs.Update(r.Context(), id, form.input); err != nil {
		if gone(r, err) {
			return
		}
		data := h.formData(true, id, form)
		data.Error = apperr.UserMessage(err, "Failed to update blog. Please try again.")
		h.renderForm(w, r, failureStatus(err), data)
		return
	}

	h.pages.redirect(w, r, viewPath(id), apperr.Success("Blog updated."))
}

func (h *BlogHandler) formData(edit bool, id string, f blogForm) views.FormData {
	action := "/create"
	if edit {
		action = "/edit/" + url.PathEscape(id)
	}
	return views.FormData{
		Edit:        edit,
		Action:      action,
		PostID:      id,
		Input:       f.input,
		TagInput:    f.tagInput,
		Categories:  models.Categories,
		Suggestions: models.TagSuggestions,
	}
}

func (h *BlogHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, data views.FormData) {
	title := "Create Blog"
	if data.Edit {
		title = "Edit Blog"
	}
	if data.Error != "" {
		logger.WithCtx(r.Context()).Debug("blogs: форма с ошибкой", zap.String("error", data.Error))
	}
	h.pages.render(w, r, status, "form", title, data)
}
