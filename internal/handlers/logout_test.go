package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-articles-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(svc *MockLogouter, tokener *MockLogoutTokener)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			mockSetup: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("a1b2c3d4", nil)
				svc.EXPECT().
					Logout(gomock.Any(), "a1b2c3d4").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Logout successful",
		},
		{
			name: "missing token",
			mockSetup: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Unauthenticated",
		},
		{
			name: "token already revoked",
			mockSetup: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("a1b2c3d4", nil)
				svc.EXPECT().
					Logout(gomock.Any(), "a1b2c3d4").
					Return(services.ErrUnauthenticated)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Unauthenticated",
		},
		{
			name: "internal server error",
			mockSetup: func(svc *MockLogouter, tokener *MockLogoutTokener) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("a1b2c3d4", nil)
				svc.EXPECT().
					Logout(gomock.Any(), "a1b2c3d4").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			mockTokener := NewMockLogoutTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewLogoutHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMsg, body["message"])
		})
	}
}
