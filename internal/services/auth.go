// Package services содержит бизнес-логику работы с пользователями и подписками.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/subscription-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/subscription-manager/internal/lib/password"
	"github.com/magabrotheeeer/subscription-manager/internal/models"
	"github.com/magabrotheeeer/subscription-manager/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Ошибка намеренно не различает, что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers возвращает идентификаторы и email всех пользователей.
	ListUsers(ctx context.Context) ([]*models.UserInfo, error)
}

// AuthService отвечает за регистрацию, авторизацию и список пользователей.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя, сохраняя bcrypt-хэш пароля.
// UID созданной записи наружу не возвращается.
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) error {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
	}
	_, err = s.users.CreateUser(ctx, user)
	return err
}

// Login проверяет пароль пользователя и генерирует JWT.
// Возвращает токен и UID пользователя.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email)
	if err != nil {
		return "", "", err
	}
	return token, user.UID, nil
}

// ListUsers возвращает список всех пользователей без хэшей паролей.
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.UserInfo, error) {
	return s.users.ListUsers(ctx)
}
