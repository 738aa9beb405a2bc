// Package models содержит доменные структуры пользователя и подписки,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в ответах API.
type User struct {
	UID          string    `json:"userId"` // Уникальный идентификатор пользователя
	Email        string    `json:"email"`  // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`      // bcrypt-хэш пароля
	CreatedAt    time.Time `json:"-"`      // Дата создания учётной записи
}

// UserInfo содержит публичную часть учётной записи для списков пользователей.
type UserInfo struct {
	UID   string `json:"userId"`
	Email string `json:"email"`
}
