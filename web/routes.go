package web

import (
	"net/http"
	"regexp"
	"strconv"
)

var (
	postPattern            = regexp.MustCompile(`^/post_(\d+)$`)
	editPostPattern        = regexp.MustCompile(`^/edit_post/(\d+)$`)
	deletePostPattern      = regexp.MustCompile(`^/delete_post/(\d+)$`)
	deleteCommentPattern   = regexp.MustCompile(`^/delete_comment/(\d+)/(\d+)$`)
	toggleBlacklistPattern = regexp.MustCompile(`^/toggle_blacklist/(\d+)$`)
)

func (app *app) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/about", app.about)

	// Маршруты только для гостей (неавторизованных)
	mux.HandleFunc("/register", app.requireGuest(app.register))
	mux.HandleFunc("/login", app.requireGuest(app.login))

	// Маршруты только для авторизованных пользователей
	mux.HandleFunc("/logout", app.requireAuth(app.logout))

	mux.HandleFunc("/create_post", app.createPost)
	mux.HandleFunc("/admin", app.adminPanel)

	// Корень и динамические маршруты с ID в пути
	mux.HandleFunc("/", app.handleRootRoutes)

	return mux
}

// handleRootRoutes обрабатывает главную страницу и динамические маршруты
func (app *app) handleRootRoutes(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if path == "/" {
		app.home(w, r)
		return
	}

	// /post_{id}
	if matches := postPattern.FindStringSubmatch(path); matches != nil {
		app.viewPost(w, r, atoiOrZero(matches[1]))
		return
	}

	// /edit_post/{id}
	if matches := editPostPattern.FindStringSubmatch(path); matches != nil {
		app.editPost(w, r, atoiOrZero(matches[1]))
		return
	}

	// /delete_post/{id}
	if matches := deletePostPattern.FindStringSubmatch(path); matches != nil {
		app.deletePost(w, r, atoiOrZero(matches[1]))
		return
	}

	// /delete_comment/{post_id}/{comment_id}
	if matches := deleteCommentPattern.FindStringSubmatch(path); matches != nil {
		app.deleteComment(w, r, atoiOrZero(matches[1]), atoiOrZero(matches[2]))
		return
	}

	// /toggle_blacklist/{user_id}
	if matches := toggleBlacklistPattern.FindStringSubmatch(path); matches != nil {
		app.toggleBlacklist(w, r, atoiOrZero(matches[1]))
		return
	}

	app.NotFound(w)
}

// atoiOrZero конвертирует уже проверенный регулярным выражением ID.
// Ноль не используется как ID, поэтому приводит к "не найдено".
func atoiOrZero(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return id
}
