package repository

import (
	"context"
	"net/http"

	"blogfront/internal/models"
)

type AuthRepo interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type authRepo struct{ c *Client }

func NewAuthRepo(c *Client) AuthRepo { return &authRepo{c: c} }

func (r *authRepo) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var resp models.LoginResponse
	if err := r.c.do(ctx, "login", http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (r *authRepo) Register(ctx context.Context, req models.RegisterRequest) error {
	return r.c.do(ctx, "register", http.MethodPost, "/api/auth/register", req, nil)
}
