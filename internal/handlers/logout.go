package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-articles-api/internal/logger"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutTokener extracts the bearer token from the request.
type LogoutTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logout successful
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary User logout
// @Description Revokes the presented bearer token. The token cannot be used afterwards.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener LogoutTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		tokenString, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Infow("logout without token", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Unauthenticated",
			})
			return
		}

		if err := svc.Logout(ctx, tokenString); err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthenticated):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Unauthenticated",
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
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logout successful",
		})
	}
}
