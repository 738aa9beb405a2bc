package list

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

// Service описывает интерфейс получения списка подписок.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Subscription, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список подписок пользователя
// @Description Возвращает подписки пользователя из query-параметра userId.
// @Tags Subscriptions
// @Produce  json
// @Param userId query string false "Идентификатор пользователя"
// @Success 200 {object} response.Response "Список подписок"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID := r.URL.Query().Get("userId")
	if userUID == "" {
		// Пустой фильтр совпадает со всеми записями — унаследованное
		// поведение исходного контракта.
		log.Warn("userId is empty, listing all subscriptions")
	}

	res, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(fmt.Sprintf("server error: %v", err)))
		return
	}

	log.Info("list subscriptions", "count", len(res))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":         len(res),
		"subscriptions": res,
	}))
}
