package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) ListPublishedArticles(w http.ResponseWriter, r *http.Request) {
	list, err := h.ArticleService.ListPublished(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, list, "", http.StatusOK)
}

func (h *Handlers) GetPublishedArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.ArticleService.GetPublished(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, article, "", http.StatusOK)
}
