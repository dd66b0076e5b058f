package services

import (
	"context"
	"strings"

	"blogfront/internal/apperr"
	"blogfront/internal/logger"
	"blogfront/internal/models"
	"blogfront/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Listing — лента после фильтрации.
type Listing struct {
	Filter  models.FilterState `json:"filter"`
	Total   int                `json:"total"`
	Visible []models.BlogPost  `json:"blogs"`
}

type BlogService struct {
	repo   repository.BlogRepo
	policy *bluemonday.Policy
}

func NewBlogService(repo repository.BlogRepo) *BlogService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &BlogService{repo: repo, policy: p}
}

// List загружает все посты и применяет фильтр на клиенте.
func (s *BlogService) List(ctx context.Context, f models.FilterState) (*Listing, error) {
	log := logger.WithCtx(ctx)
	log.Debug("blogs: загрузка ленты",
		zap.String("search", f.SearchText),
		zap.String("category", f.SelectedCategory),
		zap.String("tag", f.SelectedTag),
	)

	posts, err := s.repo.List(ctx)
	if err != nil {
		log.Error("blogs: ошибка получения списка (repo)", zap.Error(err))
		return nil, err
	}

	visible := FilterPosts(posts, f)
	log.Debug("blogs: лента отфильтрована", zap.Int("total", len(posts)), zap.Int("visible", len(visible)))
	return &Listing{Filter: f, Total: len(posts), Visible: visible}, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("blogs: пост не получен (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Create(ctx context.Context, in models.BlogInput) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	in, err := normalizeInput(in)
	if err != nil {
		log.Warn("blogs: валидация не пройдена", zap.Error(err))
		return nil, err
	}

	log.Info("blogs: создание поста",
		zap.String("title", in.Title),
		zap.String("category", in.Category),
		zap.Int("tags_count", len(in.Tags)),
	)

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error("blogs: ошибка создания поста (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("blogs: пост создан", zap.String("id", created.ID))
	return created, nil
}

func (s *BlogService) Update(ctx context.Context, id string, in models.BlogInput) (*models.BlogPost, error) {
	log := logger.WithCtx(ctx)

	in, err := normalizeInput(in)
	if err != nil {
		log.Warn("blogs: валидация не пройдена", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("blogs: обновление поста", zap.String("id", id), zap.String("title", in.Title))

	updated, err := s.repo.Update(ctx, id, in)
	if err != nil {
		log.Error("blogs: ошибка обновления поста (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("blogs: пост обновлён", zap.String("id", id))
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("blogs: удаление поста", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("blogs: ошибка удаления поста (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("blogs: пост удалён", zap.String("id", id))
	return nil
}

// ContentHTML — безопасный HTML содержимого поста для страницы просмотра.
func (s *BlogService) ContentHTML(content string) string {
	return s.policy.Sanitize(content)
}

// normalizeInput проверяет обязательные поля и прогоняет теги через TagList,
// чтобы и создание, и редактирование отправляли одинаково очищенный список.
func normalizeInput(in models.BlogInput) (models.BlogInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return in, apperr.Validation("Title is required.")
	}
	if strings.TrimSpace(in.Content) == "" {
		return in, apperr.Validation("Content is required.")
	}
	if !models.IsCategory(in.Category) {
		return in, apperr.Validation("Please select a category.")
	}

	tags := models.NewTagList(nil)
	for _, t := range in.Tags {
		tags.Add(t)
	}
	in.Tags = tags.Tags()
	return in, nil
}
