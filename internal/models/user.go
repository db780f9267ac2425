package models

import "time"

type User struct {
	ID            int       // Уникальный идентификатор
	Email         string    // Email (уникален)
	Password      []byte    // Хешированный пароль
	IsAdmin       bool      // true только у первого зарегистрированного пользователя
	IsBlacklisted bool      // Запрещено ли пользователю комментировать
	Created       time.Time // Дата регистрации
}
