package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
)

// ArticleDeleter defines the interface that the service must implement.
type ArticleDeleter interface {
	Delete(ctx context.Context, articleID uuid.UUID) error
}

// DeleteArticleResponse represents a successful deletion response
// swagger:model DeleteArticleResponse
type DeleteArticleResponse struct {
	// Success message
	// default: Article deleted successfully
	Message string `json:"message"`
}

// NewDeleteArticleHandler returns an HTTP handler that deletes an article.
// @Summary Delete article
// @Description Removes the article permanently
// @Tags articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} handlers.DeleteArticleResponse "Article deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /articles/{id} [delete]
// @Security BearerAuth
func NewDeleteArticleHandler(svc ArticleDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), articleID); err != nil {
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
		json.NewEncoder(w).Encode(DeleteArticleResponse{
			Message: "Article deleted successfully",
		})
	}
}
