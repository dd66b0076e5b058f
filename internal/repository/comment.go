package repository

import (
	"context"
	"net/http"

	"blogfront/internal/models"
)

type CommentRepo interface {
	List(ctx context.Context, blogID string) ([]models.Comment, error)
	Add(ctx context.Context, blogID string, in models.CommentInput) error
}

type commentRepo struct{ c *Client }

func NewCommentRepo(c *Client) CommentRepo { return &commentRepo{c: c} }

func (r *commentRepo) List(ctx context.Context, blogID string) ([]models.Comment, error) {
	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := r.c.do(ctx, "list comments", http.MethodGet, blogPath(blogID)+"/comments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// Add не разбирает ответ: бэкенд возвращает то статус, то созданный комментарий,
// а страница всё равно перечитывает список.
func (r *commentRepo) Add(ctx context.Context, blogID string, in models.CommentInput) error {
	return r.c.do(ctx, "add comment", http.MethodPost, blogPath(blogID)+"/comments", in, nil)
}
