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

// ArticleUpdater defines the interface that the service must implement.
type ArticleUpdater interface {
	Update(ctx context.Context, articleID uuid.UUID, update models.ArticleUpdate) (*models.ArticleDB, error)
}

// NewUpdateArticleHandler returns an HTTP handler that partially updates an
// article. Fields absent from the body are left unchanged; unknown fields
// are rejected.
// @Summary Update article
// @Description Merges the provided fields into the existing article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param article body models.ArticleUpdate true "Fields to change"
// @Success 200 {object} handlers.ArticlePayload "Updated article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "Article not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /articles/{id} [put]
// @Security BearerAuth
func NewUpdateArticleHandler(svc ArticleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ArticleUpdate

		w.Header().Set("Content-Type", "application/json")

		articleID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Article not found",
			})
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ValidationErrorResponse{
				Message: "The given data was invalid.",
				Errors:  map[string]string{"body": "The request body could not be parsed."},
			})
			return
		}

		article, err := svc.Update(r.Context(), articleID, req)
		if err != nil {
			var v *models.ValidationError
			switch {
			case errors.As(err, &v):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ValidationErrorResponse{
					Message: "The given data was invalid.",
					Errors:  v.Fields,
				})
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
