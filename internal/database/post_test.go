package database

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateAndGetPost(t *testing.T) {
	db := newTestDatabase(t)
	ps := NewPostService(db)

	post, err := ps.CreatePost("Заголовок", "Содержимое поста", "https://example.com/cat.png")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID == 0 {
		t.Fatalf("expected post id to be set")
	}

	stored, err := ps.GetPost(post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Title != "Заголовок" || stored.Content != "Содержимое поста" {
		t.Fatalf("unexpected stored post: %+v", stored)
	}
	if stored.ImageURL != "https://example.com/cat.png" {
		t.Fatalf("unexpected image url: %q", stored.ImageURL)
	}

	if _, err := ps.GetPost(9999); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCreatePostValidation(t *testing.T) {
	db := newTestDatabase(t)
	ps := NewPostService(db)

	cases := []struct {
		name     string
		title    string
		content  string
		imageURL string
		want     error
	}{
		{"empty title", "", "content", "", ErrEmptyTitle},
		{"long title", strings.Repeat("a", 101), "content", "", ErrLongTitle},
		{"empty content", "title", "", "", ErrEmptyContent},
		{"long image url", "title", "content", strings.Repeat("u", 501), ErrLongImageURL},
	}

	for _, tc := range cases {
		if _, err := ps.CreatePost(tc.title, tc.content, tc.imageURL); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestGetAllPostsNewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	ps := NewPostService(db)

	titles := []string{"Первый", "Второй", "Третий"}
	for _, title := range titles {
		if _, err := ps.CreatePost(title, "content", ""); err != nil {
			t.Fatalf("create post %q: %v", title, err)
		}
	}

	posts, err := ps.GetAllPosts()
	if err != nil {
		t.Fatalf("get all posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}

	want := []string{"Третий", "Второй", "Первый"}
	for i, post := range posts {
		if post.Title != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], post.Title)
		}
	}
}

func TestUpdatePost(t *testing.T) {
	db := newTestDatabase(t)
	ps := NewPostService(db)

	post, err := ps.CreatePost("Старый заголовок", "старое содержимое", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := ps.UpdatePost(post.ID, "Новый заголовок", "новое содержимое", "https://example.com/i.png"); err != nil {
		t.Fatalf("update post: %v", err)
	}

	stored, err := ps.GetPost(post.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if stored.Title != "Новый заголовок" || stored.Content != "новое содержимое" {
		t.Fatalf("unexpected post after update: %+v", stored)
	}

	if err := ps.UpdatePost(9999, "t", "c", ""); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestDeletePostRemovesComments(t *testing.T) {
	db := newTestDatabase(t)
	us := NewUserService(db)
	ps := NewPostService(db)
	cs := NewCommentService(db)

	user, err := us.CreateUser("user@example.com", "secret1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	other, err := us.CreateUser("other@example.com", "secret2")
	if err != nil {
		t.Fatalf("create other user: %v", err)
	}

	post, err := ps.CreatePost("Пост", "content", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := cs.CreateComment("первый", post.ID, user.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if _, err := cs.CreateComment("второй", post.ID, other.ID); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := ps.DeletePost(post.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if _, err := ps.GetPost(post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}

	// Осиротевших комментариев остаться не должно
	comments, err := cs.GetPostComments(post.ID)
	if err != nil {
		t.Fatalf("get post comments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments after post delete, got %d", len(comments))
	}

	if err := ps.DeletePost(post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}
