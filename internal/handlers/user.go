package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/middlewares"
)

// NewGetUserHandler returns an HTTP handler that reports the authenticated
// user. The auth middleware resolves the token and puts the user into the
// request context.
// @Summary Get current user
// @Description Returns the public fields of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserPayload "Authenticated user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /user [get]
// @Security BearerAuth
func NewGetUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			logger.Log.Errorw("no user in request context")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Unauthenticated",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserPayload(user))
	}
}
