package handlers

import (
	"net/http"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/models"
	"blogfront/internal/services"
	helpers "blogfront/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// APIHandler — JSON-чтение ленты для скриптов. Тот же фильтр, что на главной.
type APIHandler struct {
	blogs *services.BlogService
}

func NewAPIHandler(blogs *services.BlogService) *APIHandler {
	return &APIHandler{blogs: blogs}
}

// ListPosts godoc
// @Summary Лента постов с фильтром
// @Tags posts
// @Produce json
// @Param q query string false "Поиск по заголовку, категории и тегам"
// @Param category query string false "Категория (Tech, Lifestyle, Business, Education, Health)"
// @Param tag query string false "Тег; при наличии категория сбрасывается в All"
// @Success 200 {object} services.Listing
// @Failure 502 {object} helpers.Response
// @Router /api/posts [get]
func (h *APIHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	f := models.ParseFilter(r.URL.Query())

	listing, err := h.blogs.List(r.Context(), f)
	if err != nil {
		if gone(r, err) {
			return
		}
		logger.WithCtx(r.Context()).Warn("api: лента не получена", zap.Error(err))
		helpers.Error(w, failureStatus(err), apperr.UserMessage(err, "Failed to load blogs."))
		return
	}

	helpers.JSON(w, http.StatusOK, listing)
}

// GetPost godoc
// @Summary Пост по id
// @Tags posts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} helpers.Response
// @Failure 502 {object} helpers.Response
// @Router /api/posts/{id} [get]
func (h *APIHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.blogs.Get(r.Context(), id)
	if err != nil {
		if gone(r, err) {
			return
		}
		helpers.Error(w, failureStatus(err), apperr.UserMessage(err, "Failed to fetch blog post."))
		return
	}

	helpers.JSON(w, http.StatusOK, post)
}
