package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// ExpiringWindow определяет горизонт выборки истекающих подписок:
// попадают записи с датой истечения в полуинтервале [now, now+ExpiringWindow).
const ExpiringWindow = 72 * time.Hour

// cacheTTL время жизни закешированных списков подписок.
const cacheTTL = time.Hour

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (string, error)
	// ListSubscriptions возвращает подписки пользователя в порядке создания.
	ListSubscriptions(ctx context.Context, userUID string) ([]*models.Subscription, error)
	// ListAllSubscriptions возвращает все подписки.
	ListAllSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	// RenewSubscription перезаписывает дату истечения и возвращает UID владельца.
	RenewSubscription(ctx context.Context, id string, endDate time.Time) (string, error)
	// RemoveSubscription удаляет подписку и возвращает UID владельца.
	RemoveSubscription(ctx context.Context, id string) (string, error)
	// ListExpiringSubscriptions возвращает подписки с датой истечения в [from, to).
	ListExpiringSubscriptions(ctx context.Context, from, to time.Time) ([]*models.Subscription, error)
}

// UserFinder описывает проверку существования пользователя при создании подписки.
type UserFinder interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с подписками.
// Кеш необязателен: при nil все операции идут напрямую в хранилище.
type SubscriptionService struct {
	repo  SubscriptionRepository
	users UserFinder
	cache Cache
	log   *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, users UserFinder, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
	}
}

// Create создает новую подписку для существующего пользователя и возвращает её ID.
// Возвращает repository.ErrUserNotFound, если пользователь не найден.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummySubscription) (string, error) {
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return "", fmt.Errorf("invalid end date: %w", err)
	}

	// Проверка существования пользователя и вставка — два отдельных
	// обращения к хранилищу, без транзакции.
	if _, err := s.users.GetUser(ctx, req.UserUID); err != nil {
		return "", err
	}

	sub := models.Subscription{
		UserUID:   req.UserUID,
		Service:   strings.TrimSpace(req.Service),
		EndDate:   endDate,
		CreatedAt: time.Now(),
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return "", err
	}
	s.log.Info("created new subscription", slog.String("id", id))

	s.invalidate(req.UserUID)
	return id, nil
}

// List возвращает подписки пользователя. Пустой userUID означает отсутствие
// фильтра: возвращаются все подписки (поведение исходного контракта).
func (s *SubscriptionService) List(ctx context.Context, userUID string) ([]*models.Subscription, error) {
	if userUID == "" {
		return s.repo.ListAllSubscriptions(ctx)
	}

	cacheKey := subscriptionsKey(userUID)
	if s.cache != nil {
		var cached []*models.Subscription
		found, err := s.cache.Get(cacheKey, &cached)
		if err != nil {
			s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
		} else if found {
			return cached, nil
		}
	}

	result, err := s.repo.ListSubscriptions(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && result != nil {
		if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
			s.log.Warn("failed to cache subscriptions", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// Renew перезаписывает дату истечения подписки. Остальные поля не изменяются.
// Возвращает repository.ErrSubscriptionNotFound, если записи нет.
func (s *SubscriptionService) Renew(ctx context.Context, id, endDateStr string) error {
	endDate, err := time.Parse(time.RFC3339, endDateStr)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	userUID, err := s.repo.RenewSubscription(ctx, id, endDate)
	if err != nil {
		return err
	}
	s.log.Info("renewed subscription", slog.String("id", id))

	s.invalidate(userUID)
	return nil
}

// Remove удаляет подписку по ID.
// Возвращает repository.ErrSubscriptionNotFound, если записи нет.
func (s *SubscriptionService) Remove(ctx context.Context, id string) error {
	userUID, err := s.repo.RemoveSubscription(ctx, id)
	if err != nil {
		return err
	}
	s.log.Info("removed subscription", slog.String("id", id))

	s.invalidate(userUID)
	return nil
}

// ListExpiringSoon возвращает подписки всех пользователей с датой истечения
// в полуинтервале [now, now+ExpiringWindow). "Сейчас" вычисляется один раз
// на вызов по локальным часам процесса. Кеш не используется.
func (s *SubscriptionService) ListExpiringSoon(ctx context.Context) ([]*models.Subscription, error) {
	now := time.Now()
	return s.repo.ListExpiringSubscriptions(ctx, now, now.Add(ExpiringWindow))
}

func (s *SubscriptionService) invalidate(userUID string) {
	if s.cache == nil {
		return
	}
	cacheKey := subscriptionsKey(userUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func subscriptionsKey(userUID string) string {
	return fmt.Sprintf("subscriptions:user:%s", userUID)
}
