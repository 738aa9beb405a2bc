package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/subscription-manager/internal/models"
)

// CreateSubscription вставляет новую запись подписки и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	id := uuid.New().String()
	query := `INSERT INTO subscriptions (id, user_uid, service, end_date, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := s.DB.ExecContext(ctx, query,
		id, sub.UserUID, sub.Service, sub.EndDate, sub.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ListSubscriptions возвращает все подписки пользователя в порядке создания.
func (s *Storage) ListSubscriptions(ctx context.Context, userUID string) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, service, end_date, created_at
			  FROM subscriptions
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanSubscriptions(rows, op)
}

// ListAllSubscriptions возвращает все подписки без фильтра по пользователю.
func (s *Storage) ListAllSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	const op = "storage.ListAllSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, service, end_date, created_at
			  FROM subscriptions
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanSubscriptions(rows, op)
}

// RenewSubscription перезаписывает дату истечения подписки по её ID
// и возвращает UID владельца. Остальные поля не изменяются.
func (s *Storage) RenewSubscription(ctx context.Context, id string, endDate time.Time) (string, error) {
	const op = "storage.RenewSubscription"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET end_date = $1
			  WHERE id = $2
			  RETURNING user_uid`
	var userUID string
	if err := s.DB.QueryRowContext(ctx, query, endDate, id).Scan(&userUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return userUID, nil
}

// RemoveSubscription удаляет подписку по ID и возвращает UID владельца.
func (s *Storage) RemoveSubscription(ctx context.Context, id string) (string, error) {
	const op = "storage.RemoveSubscription"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions
			  WHERE id = $1
			  RETURNING user_uid`
	var userUID string
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&userUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return userUID, nil
}

// ListExpiringSubscriptions возвращает подписки с датой истечения
// в полуинтервале [from, to) по всем пользователям.
func (s *Storage) ListExpiringSubscriptions(ctx context.Context, from, to time.Time) ([]*models.Subscription, error) {
	const op = "storage.ListExpiringSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, service, end_date, created_at
			  FROM subscriptions
			  WHERE end_date >= $1 AND end_date < $2
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanSubscriptions(rows, op)
}

func scanSubscriptions(rows *sql.Rows, op string) ([]*models.Subscription, error) {
	var result []*models.Subscription
	for rows.Next() {
		var item models.Subscription
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Service,
			&item.EndDate, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
