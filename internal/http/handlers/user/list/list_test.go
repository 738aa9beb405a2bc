package list

import (
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
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListUsers(ctx context.Context) ([]*models.UserInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserInfo), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListHandler(t *testing.T) {
	t.Run("список пользователей без хэшей паролей", func(t *testing.T) {
		users := []*models.UserInfo{
			{UID: "uid-1", Email: "first@example.com"},
			{UID: "uid-2", Email: "second@example.com"},
		}

		service := new(MockService)
		service.On("ListUsers", mock.Anything).Return(users, nil)

		handler := New(discardLogger(), service)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), data["count"])
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		service := new(MockService)
		service.On("ListUsers", mock.Anything).Return(nil, assert.AnError)

		handler := New(discardLogger(), service)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
