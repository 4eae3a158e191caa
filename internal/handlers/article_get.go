package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
)

// ArticleGetter defines the interface that the service must implement.
type ArticleGetter interface {
	Get(ctx context.Context, articleID uuid.UUID) (*models.ArticleDB, error)
}

// NewGetArticleHandler returns an HTTP handler that fetches a single article.
// @Summary Get article
// @Description Returns the article with the given id
// @Tags articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} handlers.ArticlePayload "Article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /articles/{id} [get]
// @Security BearerAuth
func NewGetArticleHandler(svc ArticleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		articleID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Article not found",
			})
			return
		}

		article, err := svc.Get(r.Context(), articleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Article not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newArticlePayload(article))
	}
}
