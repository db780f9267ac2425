package database

import (
	"errors"
	"testing"
)

func setupPostWithUser(t *testing.T, db *Database) (*UserService, *PostService, *CommentService, int, int) {
	t.Helper()

	us := NewUserService(db)
	ps := NewPostService(db)
	cs := NewCommentService(db)

	user, err := us.CreateUser("author@example.com", "secret1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	post, err := ps.CreatePost("Пост", "content", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return us, ps, cs, user.ID, post.ID
}

func TestCreateCommentJoinsAuthor(t *testing.T) {
	db := newTestDatabase(t)
	_, _, cs, userID, postID := setupPostWithUser(t, db)

	comment, err := cs.CreateComment("отличный пост", postID, userID)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	comments, err := cs.GetPostComments(postID)
	if err != nil {
		t.Fatalf("get post comments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].ID != comment.ID || comments[0].Text != "отличный пост" {
		t.Fatalf("unexpected comment: %+v", comments[0])
	}
	if comments[0].AuthorEmail != "author@example.com" {
		t.Fatalf("expected author email joined, got %q", comments[0].AuthorEmail)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	db := newTestDatabase(t)
	_, _, cs, userID, postID := setupPostWithUser(t, db)

	if _, err := cs.CreateComment("", postID, userID); !errors.Is(err, ErrEmptyCommentText) {
		t.Fatalf("expected ErrEmptyCommentText, got %v", err)
	}
	if _, err := cs.CreateComment("   ", postID, userID); !errors.Is(err, ErrEmptyCommentText) {
		t.Fatalf("expected ErrEmptyCommentText for whitespace, got %v", err)
	}
}

func TestHasUserComment(t *testing.T) {
	db := newTestDatabase(t)
	us, _, cs, userID, postID := setupPostWithUser(t, db)

	has, err := cs.HasUserComment(postID, userID)
	if err != nil {
		t.Fatalf("has user comment: %v", err)
	}
	if has {
		t.Fatalf("expected no comment yet")
	}

	if _, err := cs.CreateComment("комментарий", postID, userID); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	has, err = cs.HasUserComment(postID, userID)
	if err != nil {
		t.Fatalf("has user comment: %v", err)
	}
	if !has {
		t.Fatalf("expected comment to be found")
	}

	// Другой пользователь к этому посту еще не комментировал
	other, err := us.CreateUser("other@example.com", "secret2")
	if err != nil {
		t.Fatalf("create other user: %v", err)
	}
	has, err = cs.HasUserComment(postID, other.ID)
	if err != nil {
		t.Fatalf("has user comment: %v", err)
	}
	if has {
		t.Fatalf("expected no comment for other user")
	}
}

func TestDeleteComment(t *testing.T) {
	db := newTestDatabase(t)
	_, _, cs, userID, postID := setupPostWithUser(t, db)

	comment, err := cs.CreateComment("комментарий", postID, userID)
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := cs.DeleteComment(comment.ID); err != nil {
		t.Fatalf("delete comment: %v", err)
	}

	if _, err := cs.GetComment(comment.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}

	if err := cs.DeleteComment(comment.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}
