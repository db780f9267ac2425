package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog/internal/models"
)

var (
	ErrPostNotFound     = errors.New("пост не найден")
	ErrEmptyTitle       = errors.New("заголовок не может быть пустым")
	ErrLongTitle        = errors.New("заголовок не должен превышать 100 символов")
	ErrEmptyContent     = errors.New("содержимое поста не может быть пустым")
	ErrLongImageURL     = errors.New("URL изображения не должен превышать 500 символов")
	ErrPostCreateFailed = errors.New("ошибка создания поста")
	ErrPostUpdateFailed = errors.New("ошибка обновления поста")
	ErrPostDeleteFailed = errors.New("ошибка удаления поста")
)

type PostService struct {
	db *Database
}

func NewPostService(db *Database) *PostService {
	return &PostService{db: db}
}

// CreatePost создает новый пост
func (ps *PostService) CreatePost(title, content, imageURL string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)

	if err := ps.validatePostData(title, content, imageURL); err != nil {
		return nil, err
	}

	query := `INSERT INTO posts (title, content, image_url, created)
		  VALUES (?, ?, ?, ?) RETURNING id`

	var post models.Post
	now := time.Now()

	err := ps.db.DBConn.QueryRow(query, title, content, imageURL, now).Scan(&post.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostCreateFailed, err)
	}

	post.Title = title
	post.Content = content
	post.ImageURL = imageURL
	post.Created = now

	return &post, nil
}

// GetPost получает пост по ID
func (ps *PostService) GetPost(id int) (*models.Post, error) {
	query := `SELECT id, title, content, image_url, created FROM posts WHERE id = ?`

	var post models.Post
	err := ps.db.DBConn.QueryRow(query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.Created)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// GetAllPosts получает все посты, новые первыми
func (ps *PostService) GetAllPosts() ([]*models.Post, error) {
	query := `SELECT id, title, content, image_url, created
		  FROM posts
		  ORDER BY created DESC, id DESC`

	rows, err := ps.db.DBConn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.Created)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// UpdatePost обновляет пост
func (ps *PostService) UpdatePost(id int, title, content, imageURL string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)

	if err := ps.validatePostData(title, content, imageURL); err != nil {
		return err
	}

	query := `UPDATE posts SET title = ?, content = ?, image_url = ? WHERE id = ?`
	result, err := ps.db.DBConn.Exec(query, title, content, imageURL, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostUpdateFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost удаляет пост вместе со всеми его комментариями.
// Обе операции выполняются в одной транзакции.
func (ps *PostService) DeletePost(id int) error {
	tx, err := ps.db.DBConn.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comments WHERE post_id = ?`, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}

	result, err := tx.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return tx.Commit()
}

// validatePostData валидирует данные поста
func (ps *PostService) validatePostData(title, content, imageURL string) error {
	if len(title) == 0 {
		return ErrEmptyTitle
	}
	if len(title) > 100 {
		return ErrLongTitle
	}
	if len(content) == 0 {
		return ErrEmptyContent
	}
	if len(imageURL) > 500 {
		return ErrLongImageURL
	}

	return nil
}
