package database

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"blog/internal/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists        = errors.New("пользователь с таким email уже существует")
	ErrEmptyEmail         = errors.New("email не может быть пустым")
	ErrLongEmail          = errors.New("email не должен превышать 100 символов")
	ErrInvalidEmail       = errors.New("некорректный email адрес")
	ErrShortPassword      = errors.New("пароль должен содержать минимум 5 символов")
	ErrLongPassword       = errors.New("пароль не должен превышать 50 символов")
	ErrPasswordHashFailed = errors.New("ошибка хеширования пароля")
	ErrUserCreateFailed   = errors.New("ошибка создания пользователя")
	ErrEmailNotFound      = errors.New("пользователь с таким email не найден")
	ErrIncorrectPassword  = errors.New("неверный пароль")
	ErrUserNotFound       = errors.New("пользователь не найден")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserService struct {
	db *Database
}

func NewUserService(db *Database) *UserService {
	return &UserService{db: db}
}

// CreateUser регистрирует нового пользователя.
// Первый зарегистрированный пользователь становится администратором:
// проверка count == 0 выполняется в той же транзакции, что и вставка.
func (us *UserService) CreateUser(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	// Валидация входных данных
	if err := us.validateUserData(email, password); err != nil {
		return nil, err
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordHashFailed, err)
	}

	tx, err := us.db.DBConn.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}
	defer tx.Rollback()

	// Проверяем уникальность email
	var exists int
	err = tx.QueryRow(`SELECT 1 FROM users WHERE email = ?`, email).Scan(&exists)
	if err != sql.ErrNoRows {
		if err == nil {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("ошибка проверки уникальности email: %v", err)
	}

	// Первый аккаунт получает права администратора
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}
	isAdmin := count == 0

	var user models.User
	now := time.Now()

	query := `INSERT INTO users (email, password, is_admin, is_blacklisted, created)
		  VALUES (?, ?, ?, 0, ?) RETURNING id`

	err = tx.QueryRow(query, email, hashedPassword, isAdmin, now).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	user.Email = email
	user.Password = hashedPassword
	user.IsAdmin = isAdmin
	user.Created = now

	return &user, nil
}

// VerifyUser проверяет email и пароль, возвращает ID пользователя
func (us *UserService) VerifyUser(email, password string) (int, error) {
	var id int
	var hashedPassword []byte

	query := `SELECT id, password FROM users WHERE email = ?`
	err := us.db.DBConn.QueryRow(query, strings.TrimSpace(email)).Scan(&id, &hashedPassword)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrEmailNotFound
		}
		return 0, err
	}

	err = bcrypt.CompareHashAndPassword(hashedPassword, []byte(password))
	if err != nil {
		return 0, ErrIncorrectPassword
	}

	return id, nil
}

// GetUser получает пользователя по ID
func (us *UserService) GetUser(id int) (*models.User, error) {
	var user models.User

	query := `SELECT id, email, password, is_admin, is_blacklisted, created FROM users WHERE id = ?`
	err := us.db.DBConn.QueryRow(query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.IsAdmin,
		&user.IsBlacklisted,
		&user.Created,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetAllUsers получает всех пользователей (для панели администратора)
func (us *UserService) GetAllUsers() ([]*models.User, error) {
	query := `SELECT id, email, password, is_admin, is_blacklisted, created
		  FROM users
		  ORDER BY id ASC`

	rows, err := us.db.DBConn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Email, &user.Password,
			&user.IsAdmin, &user.IsBlacklisted, &user.Created)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ToggleBlacklist переключает флаг черного списка пользователя
func (us *UserService) ToggleBlacklist(id int) error {
	query := `UPDATE users SET is_blacklisted = NOT is_blacklisted WHERE id = ?`
	result, err := us.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("ошибка изменения черного списка: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// validateUserData валидирует все данные пользователя
func (us *UserService) validateUserData(email, password string) error {
	if err := us.validateEmail(email); err != nil {
		return err
	}
	if err := us.validatePassword(password); err != nil {
		return err
	}
	return nil
}

// validateEmail валидирует email адрес
func (us *UserService) validateEmail(email string) error {
	if len(email) == 0 {
		return ErrEmptyEmail
	}
	if len(email) > 100 {
		return ErrLongEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

func (us *UserService) validatePassword(password string) error {
	if len(password) < 5 {
		return ErrShortPassword
	}
	if len(password) > 50 {
		return ErrLongPassword
	}
	return nil
}
