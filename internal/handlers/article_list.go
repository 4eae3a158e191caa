package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
)

// ArticleLister defines the interface that the service must implement.
type ArticleLister interface {
	List(ctx context.Context) ([]models.ArticleDB, error)
}

// NewListArticlesHandler returns an HTTP handler that lists all articles.
// @Summary List articles
// @Description Returns all articles
// @Tags articles
// @Produce json
// @Success 200 {array} handlers.ArticlePayload "Articles"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /articles [get]
// @Security BearerAuth
func NewListArticlesHandler(svc ArticleLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		articles, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Internal server error",
			})
			return
		}

		payload := make([]ArticlePayload, 0, len(articles))
		for i := range articles {
			payload = append(payload, newArticlePayload(&articles[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(payload)
	}
}
