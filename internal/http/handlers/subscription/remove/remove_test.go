package remove

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-manager/internal/http/response"
	"github.com/magabrotheeeer/subscription-manager/internal/storage/repository"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRequestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/subscriptions/"+id, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

const subscriptionID = "9a2f8e61-3b77-4c0d-8f15-6d2e4a9b0c31"

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(m *MockService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "успешное удаление",
			id:   subscriptionID,
			mockSetup: func(m *MockService) {
				m.On("Remove", mock.Anything, subscriptionID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "подписка не найдена",
			id:   subscriptionID,
			mockSetup: func(m *MockService) {
				m.On("Remove", mock.Anything, subscriptionID).
					Return(repository.ErrSubscriptionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "subscription not found",
		},
		{
			name:           "некорректный id",
			id:             "not-a-uuid",
			mockSetup:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.mockSetup(service)

			handler := New(discardLogger(), service)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequestWithID(tt.id))

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
