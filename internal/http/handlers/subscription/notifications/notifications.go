// Package notifications реализует HTTP-обработчик выборки подписок,
// истекающих в ближайшие трое суток. Обработчик только возвращает
// кандидатов на уведомление, сами уведомления никуда не отправляются.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/subscription-manager/internal/http/response"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки истекающих подписок.
type Service interface {
	ListExpiringSoon(ctx context.Context) ([]*models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Истекающие подписки
// @Description Возвращает подписки всех пользователей, истекающие в ближайшие 3 дня.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} response.Response "Список истекающих подписок"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.notifications"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListExpiringSoon(r.Context())
	if err != nil {
		log.Error("failed to list expiring subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(fmt.Sprintf("server error: %v", err)))
		return
	}

	log.Info("list expiring subscriptions", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":         len(res),
		"subscriptions": res,
	}))
}
