package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jokepatra/internal/config"
	"jokepatra/internal/service"
	"jokepatra/internal/validation"

	"go.uber.org/zap"
)

type Handlers struct {
	AuthService    service.AuthService
	ArticleService service.ArticleService
	ImageService   service.ImageService
	HealthService  service.HealthService
	Cfg            *config.Config
	Validate       *validation.Validator
	Logger         *zap.Logger
}

func NewHandlers(service *service.Service, config *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		ArticleService: service.Article,
		ImageService:   service.Image,
		HealthService:  service.Health,
		Cfg:            config,
		Validate:       validation.New(),
		Logger:         logger,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// queryInt returns 0 for a missing or malformed value; the service applies
// the default.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
