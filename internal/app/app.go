package app

import (
	"fmt"
	"net/http"

	"blogfront/internal/config"
	"blogfront/internal/handlers"
	"blogfront/internal/repository"
	"blogfront/internal/routes"
	"blogfront/internal/services"
	"blogfront/internal/session"
	"blogfront/internal/views"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, fmt.Errorf("API_TIMEOUT: %w", err)
	}
	return InitAppWithHTTP(cfg, &http.Client{Timeout: timeout})
}

// InitAppWithHTTP — то же, но с готовым HTTP-клиентом для API (тесты).
func InitAppWithHTTP(cfg *config.Config, hc *http.Client) (*mux.Router, error) {
	ttl, err := cfg.SessionTTL()
	if err != nil {
		return nil, fmt.Errorf("SESSION_MAX_AGE: %w", err)
	}

	tmpl, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	// Клиент API: единственное место, где к запросу добавляется токен
	client := repository.NewClientWithHTTP(cfg.APIBaseURL, hc)

	// Репозитории
	blogRepo := repository.NewBlogRepo(client)
	commentRepo := repository.NewCommentRepo(client)
	authRepo := repository.NewAuthRepo(client)

	// Сервисы
	blogService := services.NewBlogService(blogRepo)
	commentService := services.NewCommentService(commentRepo)
	authService := services.NewAuthService(authRepo)

	sess := session.NewManager(cfg.Secret(), ttl, cfg.CookieSecure)
	pages := handlers.NewPages(tmpl, sess)

	// Хендлеры
	blogHandler := handlers.NewBlogHandler(blogService, commentService, pages)
	commentHandler := handlers.NewCommentHandler(commentService, pages)
	authHandler := handlers.NewAuthHandler(authService, sess, pages)
	apiHandler := handlers.NewAPIHandler(blogService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, sess, blogHandler, commentHandler, authHandler, apiHandler)

	return router, nil
}
