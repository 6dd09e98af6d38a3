package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type UploadResponse struct {
	URL string `json:"url"`
}

// multipart framing on top of the file itself
const formOverhead = 1 << 20

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+formOverhead)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("File size must be less than %dMB", h.Cfg.MaxUploadSize>>20), http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.ImageService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Logger.Info("image uploaded", zap.String("url", url), zap.Int64("size", header.Size))
	WriteSuccess(w, UploadResponse{URL: url}, "Image uploaded successfully", http.StatusOK)
}
