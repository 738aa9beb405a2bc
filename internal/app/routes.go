// Package app предоставляет маршруты для основного приложения.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	subcreate "github.com/magabrotheeeer/subscription-manager/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/subscription-manager/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/subscription-manager/internal/http/handlers/subscription/notifications"
	"github.com/magabrotheeeer/subscription-manager/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/subscription-manager/internal/http/handlers/subscription/renew"
	userlist "github.com/magabrotheeeer/subscription-manager/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/subscription-manager/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/subscription-manager/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/subscription-manager/internal/services"
)

// RegisterRoutes регистрирует все маршруты приложения.
// Выданные токены маршрутами не проверяются — унаследованное поведение
// исходного контракта.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, subscriptionService *services.SubscriptionService, staticDir string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", register.New(logger, authService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
			r.Get("/", userlist.New(logger, authService).ServeHTTP)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Post("/", subcreate.New(logger, subscriptionService).ServeHTTP)
			r.Get("/", sublist.New(logger, subscriptionService).ServeHTTP)
			r.Get("/notifications", notifications.New(logger, subscriptionService).ServeHTTP)
			r.Put("/{id}", renew.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/{id}", remove.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Welcome to the Subscription Management API!"))
	})
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))
}
