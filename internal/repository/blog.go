package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"blogfront/internal/models"
)

type BlogRepo interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, in models.BlogInput) (*models.BlogPost, error)
	Update(ctx context.Context, id string, in models.BlogInput) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogRepo struct{ c *Client }

func NewBlogRepo(c *Client) BlogRepo { return &blogRepo{c: c} }

func blogPath(id string) string {
	return "/api/blogs/" + url.PathEscape(id)
}

func (r *blogRepo) List(ctx context.Context) ([]models.BlogPost, error) {
	var resp struct {
		Blogs []models.BlogPost `json:"blogs"`
	}
	if err := r.c.do(ctx, "list blogs", http.MethodGet, "/api/blogs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Blogs, nil
}

func (r *blogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "get blog", http.MethodGet, blogPath(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeBlog(raw, id)
}

func (r *blogRepo) Create(ctx context.Context, in models.BlogInput) (*models.BlogPost, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "create blog", http.MethodPost, "/api/blogs", in, &raw); err != nil {
		return nil, err
	}
	return decodeBlog(raw, "")
}

func (r *blogRepo) Update(ctx context.Context, id string, in models.BlogInput) (*models.BlogPost, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, "update blog", http.MethodPut, blogPath(id), in, &raw); err != nil {
		return nil, err
	}
	return decodeBlog(raw, id)
}

func (r *blogRepo) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, "delete blog", http.MethodDelete, blogPath(id), nil, nil)
}

// decodeBlog понимает и {"blog": {...}}, и голый объект поста.
// Пустой ответ не ошибка: вернётся пост с известным id.
func decodeBlog(raw json.RawMessage, id string) (*models.BlogPost, error) {
	post := &models.BlogPost{ID: id}
	if len(raw) == 0 {
		return post, nil
	}

	var envelope struct {
		Blog *models.BlogPost `json:"blog"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Blog != nil {
		post = envelope.Blog
	} else if err := json.Unmarshal(raw, post); err != nil {
		return nil, err
	}

	if post.ID == "" {
		post.ID = id
	}
	return post, nil
}
