package server

import (
	"net/http"
	"strings"

	"jokepatra/internal/config"
	handlers "jokepatra/internal/handler"
	"jokepatra/internal/middleware"
	"jokepatra/internal/web"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires every route. Admin routes are wrapped one by one so a route
// only exists behind the guard.
func NewRouter(h *handlers.Handlers, site *web.Site, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	admin := middleware.RequireAdmin(h.AuthService)
	guard := func(fn http.HandlerFunc) http.Handler {
		return admin(fn)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	// admin
	api.Handle("/admin/login", middleware.LoginRateLimit(cfg.LoginRateLimit)(http.HandlerFunc(h.Login))).Methods(http.MethodPost)
	api.Handle("/admin/articles", guard(h.ListArticles)).Methods(http.MethodGet)
	api.Handle("/admin/articles", guard(h.DeleteArticle)).Methods(http.MethodDelete)
	api.Handle("/admin/articles/generate", guard(h.GenerateArticle)).Methods(http.MethodPost)
	api.Handle("/admin/articles/publish", guard(h.PublishArticle)).Methods(http.MethodPatch)
	api.Handle("/admin/articles/{id}", guard(h.UpdateArticle)).Methods(http.MethodPatch)
	api.Handle("/admin/upload", guard(h.UploadImage)).Methods(http.MethodPost)

	// public
	api.HandleFunc("/articles", h.ListPublishedArticles).Methods(http.MethodGet)
	api.HandleFunc("/articles/{slug}", h.GetPublishedArticle).Methods(http.MethodGet)

	// cron
	api.HandleFunc("/cron/daily-news", h.DailyNews).Methods(http.MethodGet)

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	// pages
	r.HandleFunc("/", site.Home).Methods(http.MethodGet)
	r.HandleFunc("/news/{slug}", site.Article).Methods(http.MethodGet)
	r.HandleFunc("/admin", site.Admin).Methods(http.MethodGet)

	return middleware.Chain(r,
		middleware.Recover(logger),
		middleware.Logging(logger),
		middleware.CORS(),
	)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		handlers.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = web.NotFoundPage().Render(w)
}
