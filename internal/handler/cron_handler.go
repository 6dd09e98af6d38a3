package handlers

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// DailyNews is called by the scheduler with the shared cron secret.
func (h *Handlers) DailyNews(w http.ResponseWriter, r *http.Request) {
	want := "Bearer " + h.Cfg.CronSecret
	got := r.Header.Get("Authorization")
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		WriteError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	article, err := h.ArticleService.GenerateDaily(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Logger.Info("daily article published", zap.String("slug", article.Slug))
	WriteSuccess(w, article, "Daily satirical news generated successfully", http.StatusOK)
}
