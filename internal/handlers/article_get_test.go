package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-articles-api/internal/models"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
	"github.com/stretchr/testify/assert"
)

// newArticleRequest builds a request with the chi URL parameter "id" set.
func newArticleRequest(method, id string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, "/articles/"+id, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetArticleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articleID := uuid.New()

	tests := []struct {
		name         string
		articleID    string
		mockSetup    func(m *MockArticleGetter)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name:      "success",
			articleID: articleID.String(),
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), articleID).
					Return(&models.ArticleDB{
						ArticleID:   articleID,
						Title:       "First",
						Content:     "Body one",
						Author:      "Alice",
						IsPublished: true,
						Category:    "news",
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, articleID.String(), body["id"])
				assert.Equal(t, "First", body["title"])
				assert.Equal(t, "Body one", body["content"])
				assert.Equal(t, "Alice", body["author"])
				assert.Equal(t, true, body["is_published"])
				assert.Equal(t, "news", body["category"])
			},
		},
		{
			name:      "not found",
			articleID: articleID.String(),
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), articleID).
					Return(nil, services.ErrArticleNotFound)
			},
			expectedCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Article not found", body["message"])
			},
		},
		{
			name:         "invalid id",
			articleID:    "not-a-uuid",
			expectedCode: http.StatusNotFound,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Article not found", body["message"])
			},
		},
		{
			name:      "internal server error",
			articleID: articleID.String(),
			mockSetup: func(m *MockArticleGetter) {
				m.EXPECT().
					Get(gomock.Any(), articleID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Internal server error", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockArticleGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetArticleHandler(mockSvc)

			req := newArticleRequest(http.MethodGet, tt.articleID, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			tt.checkBody(t, body)
		})
	}
}
