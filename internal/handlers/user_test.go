package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/middlewares"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserHandler(t *testing.T) {
	handler := NewGetUserHandler()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()
		user := &models.UserDB{
			UserID:       userID,
			Name:         "John Doe",
			Email:        "john@example.com",
			PasswordHash: "hash",
		}

		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["id"])
		assert.Equal(t, "John Doe", body["name"])
		assert.Equal(t, "john@example.com", body["email"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Unauthenticated", body["message"])
	})
}
