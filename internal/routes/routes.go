package routes

import (
	"net/http"

	"blogfront/internal/handlers"
	"blogfront/internal/middleware"
	"blogfront/internal/session"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	sess *session.Manager,
	blogHandler *handlers.BlogHandler,
	commentHandler *handlers.CommentHandler,
	authHandler *handlers.AuthHandler,
	apiHandler *handlers.APIHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging, middleware.Session(sess))

	// --- Публичные страницы ---
	router.HandleFunc("/", blogHandler.Home).Methods(http.MethodGet)
	router.HandleFunc("/view/{id}", blogHandler.View).Methods(http.MethodGet)
	router.HandleFunc("/view/{id}/comments", commentHandler.Add).Methods(http.MethodPost)
	// удаление и комментарии не закрыты шлюзом: без токена их отклонит сервер
	router.HandleFunc("/delete/{id}", blogHandler.Delete).Methods(http.MethodPost)

	router.HandleFunc("/login", authHandler.LoginForm).Methods(http.MethodGet)
	router.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/register", authHandler.RegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// --- JSON API (чтение) ---
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", apiHandler.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", apiHandler.GetPost).Methods(http.MethodGet)

	// --- Только с токеном ---
	private := router.PathPrefix("").Subrouter()
	private.Use(middleware.RequireSession)
	private.HandleFunc("/create", blogHandler.CreateForm).Methods(http.MethodGet)
	private.HandleFunc("/create", blogHandler.Create).Methods(http.MethodPost)
	private.HandleFunc("/edit/{id}", blogHandler.EditForm).Methods(http.MethodGet)
	private.HandleFunc("/edit/{id}", blogHandler.Update).Methods(http.MethodPost)
}
