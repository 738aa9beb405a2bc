package login

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-manager/internal/http/response"
	"github.com/magabrotheeeer/subscription-manager/internal/services"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "успешная авторизация",
			body: `{"email": "user@example.com", "password": "pw1"}`,
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "pw1").
					Return("signed-token", "7c9e6679-7425-40de-944b-e07fc1f90ae7", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "неверный пароль",
			body: `{"email": "user@example.com", "password": "wrong"}`,
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, "user@example.com", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
		{
			name: "неизвестный email получает тот же ответ",
			body: `{"email": "unknown@example.com", "password": "pw1"}`,
			mockSetup: func(m *MockService) {
				m.On("Login", mock.Anything, "unknown@example.com", "pw1").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid email or password",
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			mockSetup:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "пустые поля",
			body:           `{}`,
			mockSetup:      func(m *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.mockSetup(service)

			handler := New(discardLogger(), service)

			req := httptest.NewRequest(http.MethodPost, "/api/users/login",
				bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			service.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_ReturnsTokenAndUserID(t *testing.T) {
	service := new(MockService)
	service.On("Login", mock.Anything, "user@example.com", "pw1").
		Return("signed-token", "7c9e6679-7425-40de-944b-e07fc1f90ae7", nil)

	handler := New(discardLogger(), service)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login",
		bytes.NewBufferString(`{"email": "user@example.com", "password": "pw1"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", data["userId"])
}
