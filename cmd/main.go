package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	_ "blogfront/docs"
	"blogfront/internal/app"
	"blogfront/internal/config"
	"blogfront/internal/logger"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "blogfront",
	Short: "Blog front-end over the blog REST API",
	Long: `blogfront renders the blog (list, search, view, create, edit, comments)
as server-side HTML over the remote blog API.

Commands:
  serve - run the web front-end
  posts - print the filtered list of posts`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front-end",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, postsCmd)
}

// @title Blogfront API
// @version 1.0
// @description Чтение ленты блога с тем же фильтром, что и на главной.
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// corsOptions: куки отдаются только явно перечисленным origin, не "*".
// Пустой список в rs/cors значит "все", поэтому без CORS_ORIGINS
// чужие origin отклоняются.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: !slices.Contains(origins, "*"),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
	}
	if len(origins) == 0 {
		opts.AllowCredentials = false
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return opts
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Error("Некорректная конфигурация", zap.Error(err))
		return err
	}
	for _, w := range warnings {
		logger.Log.Warn("config: " + w)
	}

	router, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Error("Ошибка инициализации приложения", zap.Error(err))
		return err
	}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	corsMiddleware := cors.New(corsOptions(cfg.CORSOrigins))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsMiddleware.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Сервер запущен", zap.String("port", cfg.Port), zap.String("api", cfg.APIBaseURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка запуска сервера", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("Остановка сервера")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
