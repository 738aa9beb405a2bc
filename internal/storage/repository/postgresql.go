// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и их подписками. Предоставляет методы
// создания, чтения, обновления и удаления записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/sl"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисный слой транслирует их
// в соответствующие HTTP-статусы.
var (
	// ErrUserExists возвращается при нарушении уникальности email.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrSubscriptionNotFound возвращается, если подписка не найдена.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и подписками.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL. Недоступность базы на старте
// не является фатальной: ошибка пинга логируется, а запросы будут
// завершаться ошибками индивидуально, пока база не поднимется.
func New(storageConnectionString string, log *slog.Logger) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		log.Error("storage is not reachable", sl.Err(err))
	}

	return &Storage{
		DB: db,
	}, nil
}
