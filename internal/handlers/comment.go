package handlers

import (
	"net/http"

	"blogfront/internal/apperr"
	"blogfront/internal/services"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	comments *services.CommentService
	pages    *Pages
}

func NewCommentHandler(comments *services.CommentService, pages *Pages) *CommentHandler {
	return &CommentHandler{comments: comments, pages: pages}
}

// Add добавляет комментарий и возвращает на пост, где список перечитывается.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res := apperr.Success("Comment added.")
	if err := h.comments.Add(r.Context(), id, r.PostFormValue("content")); err != nil {
		if gone(r, err) {
			return
		}
		res = apperr.Failure(err, "Failed to add comment. Please try again.")
	}

	h.pages.redirect(w, r, viewPath(id)+"#comments", res)
}
