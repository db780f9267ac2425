package web

import (
	"net/http"
	"strconv"
	"strings"

	"blog/internal/database"
	"blog/internal/models"
	"blog/internal/rules"
)

// viewPost показывает пост с комментариями, POST добавляет комментарий
func (app *app) viewPost(w http.ResponseWriter, r *http.Request, postID int) {
	post, err := app.PostService.GetPost(postID)
	if err != nil {
		if err == database.ErrPostNotFound {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	if r.Method != http.MethodPost {
		app.renderPostPage(w, r, post, "", "")
		return
	}

	postURL := "/post_" + strconv.Itoa(postID)
	user := app.getCurrentUser(r)

	hasCommented := false
	if user != nil {
		hasCommented, err = app.CommentService.HasUserComment(postID, user.ID)
		if err != nil {
			app.ServerError(w, err)
			return
		}
	}

	if d := rules.CanComment(user, hasCommented); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, postURL, http.StatusSeeOther)
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))

	comment, err := app.CommentService.CreateComment(text, postID, user.ID)
	if err != nil {
		// Ошибки валидации показываем в форме комментария
		app.renderPostPage(w, r, post, err.Error(), text)
		return
	}

	app.infoLog.Printf("Comment created: ID=%d, Post=%d, Author=%q",
		comment.ID, postID, user.Email)

	app.flash(w, "Комментарий добавлен.")
	http.Redirect(w, r, postURL, http.StatusSeeOther)
}

// renderPostPage рендерит страницу поста с его комментариями
func (app *app) renderPostPage(w http.ResponseWriter, r *http.Request, post *models.Post, formError, formText string) {
	comments, err := app.CommentService.GetPostComments(post.ID)
	if err != nil {
		app.errorLog.Printf("Failed to get comments for post %d: %v", post.ID, err)
		comments = []*models.Comment{}
	}

	data := &HTMLData{
		Title:     post.Title,
		Post:      post,
		Comments:  comments,
		FormError: formError,
		FormData: map[string]string{
			"text": formText,
		},
	}

	app.RenderHTML(w, r, "view-post.page.html", data)
}

// createPost создает новый пост (только администратор)
func (app *app) createPost(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)

	if d := rules.CanCreatePost(user); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Создать пост",
			CurrentUser: user,
		}
		app.RenderHTML(w, r, "create-post.page.html", data)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	imageURL := strings.TrimSpace(r.FormValue("image_url"))

	post, err := app.PostService.CreatePost(title, content, imageURL)
	if err != nil {
		data := &HTMLData{
			Title:       "Создать пост",
			FormError:   err.Error(),
			CurrentUser: user,
			FormData: map[string]string{
				"title":     title,
				"content":   content,
				"image_url": imageURL,
			},
		}
		app.RenderHTML(w, r, "create-post.page.html", data)
		return
	}

	app.infoLog.Printf("Post created: ID=%d, Title=%q, Author=%q",
		post.ID, post.Title, user.Email)

	app.flash(w, "Пост создан.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// editPost редактирует пост (только администратор)
func (app *app) editPost(w http.ResponseWriter, r *http.Request, postID int) {
	user := app.getCurrentUser(r)

	if d := rules.CanEditPost(user); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	post, err := app.PostService.GetPost(postID)
	if err != nil {
		if err == database.ErrPostNotFound {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Редактировать пост",
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":     post.Title,
				"content":   post.Content,
				"image_url": post.ImageURL,
			},
		}
		app.RenderHTML(w, r, "edit-post.page.html", data)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	content := strings.TrimSpace(r.FormValue("content"))
	imageURL := strings.TrimSpace(r.FormValue("image_url"))

	err = app.PostService.UpdatePost(postID, title, content, imageURL)
	if err != nil {
		data := &HTMLData{
			Title:       "Редактировать пост",
			FormError:   err.Error(),
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":     title,
				"content":   content,
				"image_url": imageURL,
			},
		}
		app.RenderHTML(w, r, "edit-post.page.html", data)
		return
	}

	app.infoLog.Printf("Post updated: ID=%d, Title=%q, Author=%q", postID, title, user.Email)

	app.flash(w, "Пост обновлен.")
	http.Redirect(w, r, "/post_"+strconv.Itoa(postID), http.StatusSeeOther)
}

// deletePost удаляет пост вместе с комментариями (только администратор)
func (app *app) deletePost(w http.ResponseWriter, r *http.Request, postID int) {
	user := app.getCurrentUser(r)

	if d := rules.CanDeletePost(user); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	err := app.PostService.DeletePost(postID)
	if err != nil {
		if err == database.ErrPostNotFound {
			app.NotFound(w)
			return
		}
		app.errorLog.Printf("Failed to delete post %d: %v", postID, err)
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Post deleted: ID=%d, Author=%q", postID, user.Email)

	app.flash(w, "Пост удален.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// deleteComment удаляет комментарий (только его автор)
func (app *app) deleteComment(w http.ResponseWriter, r *http.Request, postID, commentID int) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	comment, err := app.CommentService.GetComment(commentID)
	if err != nil {
		if err == database.ErrCommentNotFound {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	// Комментарий должен принадлежать посту из URL
	if comment.PostID != postID {
		app.NotFound(w)
		return
	}

	postURL := "/post_" + strconv.Itoa(postID)
	user := app.getCurrentUser(r)

	if d := rules.CanDeleteComment(user, comment); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, postURL, http.StatusSeeOther)
		return
	}

	if err := app.CommentService.DeleteComment(commentID); err != nil {
		app.errorLog.Printf("Failed to delete comment %d: %v", commentID, err)
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Comment deleted: ID=%d, Post=%d, Author=%q",
		commentID, postID, user.Email)

	app.flash(w, "Комментарий удален.")
	http.Redirect(w, r, postURL, http.StatusSeeOther)
}
