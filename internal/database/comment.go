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
	ErrCommentNotFound     = errors.New("комментарий не найден")
	ErrEmptyCommentText    = errors.New("текст комментария не может быть пустым")
	ErrLongCommentText     = errors.New("текст комментария не должен превышать 2000 символов")
	ErrCommentCreateFailed = errors.New("ошибка создания комментария")
	ErrCommentDeleteFailed = errors.New("ошибка удаления комментария")
)

type CommentService struct {
	db *Database
}

func NewCommentService(db *Database) *CommentService {
	return &CommentService{db: db}
}

// CreateComment создает новый комментарий
func (cs *CommentService) CreateComment(text string, postID, userID int) (*models.Comment, error) {
	text = strings.TrimSpace(text)

	if err := cs.validateCommentText(text); err != nil {
		return nil, err
	}

	query := `INSERT INTO comments (text, post_id, user_id, created)
		  VALUES (?, ?, ?, ?) RETURNING id`

	var comment models.Comment
	now := time.Now()

	err := cs.db.DBConn.QueryRow(query, text, postID, userID, now).Scan(&comment.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommentCreateFailed, err)
	}

	comment.Text = text
	comment.PostID = postID
	comment.UserID = userID
	comment.Created = now

	return &comment, nil
}

// GetComment получает комментарий по ID с информацией об авторе
func (cs *CommentService) GetComment(id int) (*models.Comment, error) {
	query := `SELECT c.id, c.text, c.post_id, c.user_id, c.created, u.email
		  FROM comments c
		  JOIN users u ON c.user_id = u.id
		  WHERE c.id = ?`

	var comment models.Comment
	err := cs.db.DBConn.QueryRow(query, id).Scan(
		&comment.ID, &comment.Text, &comment.PostID, &comment.UserID,
		&comment.Created, &comment.AuthorEmail)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	return &comment, nil
}

// GetPostComments получает все комментарии поста с данными авторов
func (cs *CommentService) GetPostComments(postID int) ([]*models.Comment, error) {
	query := `SELECT c.id, c.text, c.post_id, c.user_id, c.created, u.email
		  FROM comments c
		  JOIN users u ON c.user_id = u.id
		  WHERE c.post_id = ?
		  ORDER BY c.created ASC, c.id ASC`

	rows, err := cs.db.DBConn.Query(query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(&comment.ID, &comment.Text, &comment.PostID, &comment.UserID,
			&comment.Created, &comment.AuthorEmail)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// HasUserComment проверяет, оставлял ли пользователь комментарий к посту
func (cs *CommentService) HasUserComment(postID, userID int) (bool, error) {
	var exists int
	query := `SELECT 1 FROM comments WHERE post_id = ? AND user_id = ?`
	err := cs.db.DBConn.QueryRow(query, postID, userID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteComment удаляет комментарий по ID
func (cs *CommentService) DeleteComment(id int) error {
	query := `DELETE FROM comments WHERE id = ?`
	result, err := cs.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommentDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// validateCommentText валидирует текст комментария
func (cs *CommentService) validateCommentText(text string) error {
	if len(text) == 0 {
		return ErrEmptyCommentText
	}
	if len(text) > 2000 {
		return ErrLongCommentText
	}

	return nil
}
