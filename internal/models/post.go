package models

import "time"

type Post struct {
	ID       int       // Уникальный идентификатор
	Title    string    // Заголовок поста
	Content  string    // Содержимое поста
	ImageURL string    // URL изображения (необязательно)
	Created  time.Time // Дата создания
}
