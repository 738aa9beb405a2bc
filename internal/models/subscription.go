package models

import "time"

// Subscription представляет запись о подписке пользователя на сервис.
// EndDate — момент истечения подписки, CreatedAt выставляется при создании
// и далее не изменяется.
type Subscription struct {
	ID        string    `json:"id"`        // Уникальный идентификатор записи
	UserUID   string    `json:"userId"`    // Идентификатор владельца
	Service   string    `json:"service"`   // Название сервиса подписки
	EndDate   time.Time `json:"endDate"`   // Дата истечения
	CreatedAt time.Time `json:"createdAt"` // Дата создания записи
}

// DummySubscription используется для приёма данных из JSON-запроса
// на создание подписки. Дата приходит строкой в формате RFC3339,
// чтобы её можно было валидировать и парсить вручную.
type DummySubscription struct {
	UserUID string `json:"userId" validate:"required,uuid"` // Идентификатор владельца
	Service string `json:"service" validate:"required"`     // Название сервиса
	EndDate string `json:"endDate" validate:"required"`     // Дата истечения в формате RFC3339
}

// DummyRenew используется для приёма данных из JSON-запроса на продление подписки.
type DummyRenew struct {
	EndDate string `json:"endDate" validate:"required"` // Новая дата истечения в формате RFC3339
}
