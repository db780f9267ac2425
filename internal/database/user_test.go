package database

import (
	"errors"
	"strings"
	"testing"
)

func TestFirstRegisteredUserBecomesAdmin(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	first, err := us.CreateUser("first@example.com", "secret1")
	if err != nil {
		t.Fatalf("create first user: %v", err)
	}
	if !first.IsAdmin {
		t.Fatalf("first registered user expected to be admin")
	}

	second, err := us.CreateUser("second@example.com", "secret2")
	if err != nil {
		t.Fatalf("create second user: %v", err)
	}
	if second.IsAdmin {
		t.Fatalf("second registered user must not be admin")
	}

	third, err := us.CreateUser("third@example.com", "secret3")
	if err != nil {
		t.Fatalf("create third user: %v", err)
	}
	if third.IsAdmin {
		t.Fatalf("third registered user must not be admin")
	}

	// Флаг сохраняется в базе, а не только в возвращенной структуре
	stored, err := us.GetUser(first.ID)
	if err != nil {
		t.Fatalf("get first user: %v", err)
	}
	if !stored.IsAdmin {
		t.Fatalf("stored first user expected to be admin")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	if _, err := us.CreateUser("user@example.com", "secret1"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err := us.CreateUser("user@example.com", "another1")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty email", "", "secret1", ErrEmptyEmail},
		{"invalid email", "not-an-email", "secret1", ErrInvalidEmail},
		{"short password", "user@example.com", "1234", ErrShortPassword},
		{"long password", "user@example.com", strings.Repeat("x", 51), ErrLongPassword},
	}

	for _, tc := range cases {
		if _, err := us.CreateUser(tc.email, tc.password); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestVerifyUser(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	user, err := us.CreateUser("user@example.com", "secret1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	id, err := us.VerifyUser("user@example.com", "secret1")
	if err != nil {
		t.Fatalf("verify user: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, id)
	}

	if _, err := us.VerifyUser("user@example.com", "wrong-pass"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}

	if _, err := us.VerifyUser("nobody@example.com", "secret1"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestToggleBlacklist(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)

	user, err := us.CreateUser("user@example.com", "secret1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.IsBlacklisted {
		t.Fatalf("new user must not be blacklisted")
	}

	if err := us.ToggleBlacklist(user.ID); err != nil {
		t.Fatalf("toggle blacklist: %v", err)
	}
	stored, err := us.GetUser(user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !stored.IsBlacklisted {
		t.Fatalf("user expected to be blacklisted after toggle")
	}

	// Повторное переключение снимает блокировку
	if err := us.ToggleBlacklist(user.ID); err != nil {
		t.Fatalf("toggle blacklist back: %v", err)
	}
	stored, err = us.GetUser(user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.IsBlacklisted {
		t.Fatalf("user expected to be unblocked after second toggle")
	}

	if err := us.ToggleBlacklist(9999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
