package web

import (
	"net/http"

	"blog/internal/models"
)

func (app *app) home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	// Получаем все посты, новые первыми
	posts, err := app.PostService.GetAllPosts()
	if err != nil {
		app.errorLog.Printf("Failed to get posts: %v", err)
		posts = []*models.Post{} // пустой слайс при ошибке
	}

	data := &HTMLData{
		Title: "Главная",
		Posts: posts,
	}

	app.RenderHTML(w, r, "home.page.html", data)
}

func (app *app) about(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	data := &HTMLData{
		Title: "О проекте",
	}

	app.RenderHTML(w, r, "about.page.html", data)
}
