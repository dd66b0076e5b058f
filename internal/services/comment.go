package services

import (
	"context"
	"strings"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/models"
	"blogfront/internal/repository"

	"go.uber.org/zap"
)

type CommentService struct {
	repo repository.CommentRepo
}

func NewCommentService(repo repository.CommentRepo) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) List(ctx context.Context, blogID string) ([]models.Comment, error) {
	comments, err := s.repo.List(ctx, blogID)
	if err != nil {
		logger.WithCtx(ctx).Error("comments: ошибка получения комментариев (repo)", zap.String("blog_id", blogID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Add(ctx context.Context, blogID, content string) error {
	log := logger.WithCtx(ctx)

	if strings.TrimSpace(content) == "" {
		return apperr.Validation("Comment cannot be empty.")
	}

	if err := s.repo.Add(ctx, blogID, models.CommentInput{Content: content}); err != nil {
		log.Error("comments: ошибка добавления комментария (repo)", zap.String("blog_id", blogID), zap.Error(err))
		return err
	}

	log.Info("comments: комментарий добавлен", zap.String("blog_id", blogID))
	return nil
}
