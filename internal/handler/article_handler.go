package handlers

import (
	"net/http"

	"jokepatra/internal/auth"
	"jokepatra/internal/service"
	"jokepatra/internal/validation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ListArticles returns drafts and published articles, newest created first.
func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	list, err := h.ArticleService.ListAll(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, list, "", http.StatusOK)
}

// DeleteArticle does not check that the id existed.
func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "Article ID required", http.StatusBadRequest)
		return
	}

	if err := h.ArticleService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Logger.Info("article deleted", zap.String("article_id", id))
	WriteSuccess(w, nil, "Article deleted successfully", http.StatusOK)
}

func (h *Handlers) GenerateArticle(w http.ResponseWriter, r *http.Request) {
	var req validation.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.ValidateGenerate(&req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	input := service.GenerateInput{
		Prompt:        req.Prompt,
		Publish:       req.Publish,
		FeaturedImage: req.FeaturedImage,
	}
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		input.AuthorID = claims.UserID
	}

	article, err := h.ArticleService.Generate(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	message := "Article generated and saved as draft"
	if article.IsPublished() {
		message = "Article generated and published successfully"
	}

	h.Logger.Info("article generated",
		zap.String("article_id", article.ID),
		zap.String("slug", article.Slug),
		zap.Bool("published", article.IsPublished()),
	)
	WriteSuccess(w, article, message, http.StatusCreated)
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req validation.ArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := h.Validate.ValidateArticle(&req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	article, err := h.ArticleService.Update(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, article, "Article updated successfully", http.StatusOK)
}

func (h *Handlers) PublishArticle(w http.ResponseWriter, r *http.Request) {
	var req validation.PublishRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Article ID and publish status required", http.StatusBadRequest)
		return
	}

	if err := h.Validate.ValidatePublish(&req); err != nil {
		WriteError(w, "Article ID and publish status required", http.StatusBadRequest)
		return
	}

	article, err := h.ArticleService.SetPublished(r.Context(), req.ID, *req.Publish)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	message := "Article unpublished successfully"
	if *req.Publish {
		message = "Article published successfully"
	}

	WriteSuccess(w, article, message, http.StatusOK)
}
