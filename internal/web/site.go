package web

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"jokepatra/internal/repository"
	"jokepatra/internal/service"

	"github.com/gorilla/mux"
	g "github.com/maragudk/gomponents"
	"go.uber.org/zap"
)

// maxFeedPage keeps the page offset from overflowing.
const maxFeedPage = math.MaxInt32 / FeedPageSize

type Site struct {
	articles service.ArticleService
	logger   *zap.Logger
}

func NewSite(articles service.ArticleService, logger *zap.Logger) *Site {
	return &Site{articles: articles, logger: logger}
}

func render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 || page > maxFeedPage {
		page = 1
	}

	list, err := s.articles.ListPublished(r.Context(), FeedPageSize, (page-1)*FeedPageSize)
	if err != nil {
		s.logger.Error("loading feed", zap.Error(err))
		render(w, http.StatusInternalServerError, ErrorPage(err.Error()))
		return
	}

	render(w, http.StatusOK, HomePage(list, page))
}

func (s *Site) Article(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.GetPublished(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			render(w, http.StatusNotFound, NotFoundPage())
			return
		}
		s.logger.Error("loading article", zap.Error(err))
		render(w, http.StatusInternalServerError, ErrorPage(err.Error()))
		return
	}

	render(w, http.StatusOK, ArticlePage(article))
}

func (s *Site) Admin(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, AdminPage())
}
