package notifications

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-manager/internal/http/response"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListExpiringSoon(ctx context.Context) ([]*models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Subscription), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotificationsHandler(t *testing.T) {
	t.Run("истекающие подписки всех пользователей", func(t *testing.T) {
		subs := []*models.Subscription{
			{
				ID:      "id-1",
				UserUID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
				Service: "streamX",
				EndDate: time.Now().Add(24 * time.Hour),
			},
			{
				ID:      "id-2",
				UserUID: "2f1b7a1e-9f0c-4c44-9c36-1a2b3c4d5e6f",
				Service: "musicY",
				EndDate: time.Now().Add(48 * time.Hour),
			},
		}

		service := new(MockService)
		service.On("ListExpiringSoon", mock.Anything).Return(subs, nil)

		handler := New(discardLogger(), service)

		req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/notifications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), data["count"])
	})

	t.Run("нет кандидатов", func(t *testing.T) {
		service := new(MockService)
		service.On("ListExpiringSoon", mock.Anything).Return([]*models.Subscription{}, nil)

		handler := New(discardLogger(), service)

		req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/notifications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(0), data["count"])
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		service := new(MockService)
		service.On("ListExpiringSoon", mock.Anything).Return(nil, assert.AnError)

		handler := New(discardLogger(), service)

		req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/notifications", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
