package services

import (
	"context"
	"net/http"
	"strings"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/models"
	"blogfront/internal/repository"

	"go.uber.org/zap"
)

type AuthService struct {
	repo repository.AuthRepo
}

func NewAuthService(repo repository.AuthRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Login возвращает токен сервера. Токен не разбирается и не проверяется.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.WithCtx(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", apperr.Validation("Please enter both email and password.")
	}

	log.Info("auth: попытка входа", zap.String("email", email))

	token, err := s.repo.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Warn("auth: вход не выполнен", zap.String("email", email), zap.Error(err))
		return "", err
	}
	if token == "" {
		log.Error("auth: сервер не вернул токен", zap.String("email", email))
		return "", apperr.Rejected("login", http.StatusOK, "Login failed: the server returned no token.")
	}

	log.Info("auth: вход выполнен", zap.String("email", email))
	return token, nil
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	log := logger.WithCtx(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return apperr.Validation("Please fill in username, email and password.")
	}

	log.Info("auth: регистрация", zap.String("username", req.Username), zap.String("email", req.Email))

	if err := s.repo.Register(ctx, req); err != nil {
		log.Warn("auth: регистрация отклонена", zap.String("email", req.Email), zap.Error(err))
		return err
	}

	log.Info("auth: пользователь зарегистрирован", zap.String("username", req.Username))
	return nil
}
