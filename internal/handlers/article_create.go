package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
)

// ArticleCreator defines the interface that the service must implement.
type ArticleCreator interface {
	Create(ctx context.Context, article models.ArticleCreate) (*models.ArticleDB, error)
}

// NewCreateArticleHandler returns an HTTP handler that creates an article.
// Unknown fields in the request body are rejected: the input struct is the
// whitelist of what a client may set.
// @Summary Create article
// @Description Creates a new article from the fillable fields
// @Tags articles
// @Accept json
// @Produce json
// @Param article body models.ArticleCreate true "Article fields"
// @Success 201 {object} handlers.ArticlePayload "Created article"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /articles [post]
// @Security BearerAuth
func NewCreateArticleHandler(svc ArticleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ArticleCreate

		w.Header().Set("Content-Type", "application/json")

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

		article, err := svc.Create(r.Context(), req)
		if err != nil {
			var v *models.ValidationError
			switch {
			case errors.As(err, &v):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(ValidationErrorResponse{
					Message: "The given data was invalid.",
					Errors:  v.Fields,
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newArticlePayload(article))
	}
}
