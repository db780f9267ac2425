package web

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
	"time"
	"unicode"

	"blog/internal/models"
)

type HTMLData struct {
	Title       string
	Path        string
	Flash       string
	FormError   string
	FormData    map[string]string // для хранения введённых значений в форму
	CurrentUser *models.User
	Post        *models.Post
	Posts       []*models.Post
	Comments    []*models.Comment
	Users       []*models.User
}

var functions = template.FuncMap{
	"cap": func(str string) string {
		if str == "" {
			return ""
		}
		runes := []rune(str)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
}

func (app *app) RenderHTML(w http.ResponseWriter, r *http.Request, pageFile string, data *HTMLData) {
	if data == nil {
		data = &HTMLData{}
	}

	data.Path = r.URL.Path

	// Добавляем текущего пользователя, если он не установлен
	if data.CurrentUser == nil {
		data.CurrentUser = app.getCurrentUser(r)
	}

	// Показываем отложенное flash-сообщение
	if data.Flash == "" {
		data.Flash = app.popFlash(w, r)
	}

	layoutFile := "base.layout.html"

	files := []string{
		filepath.Join(app.HTMLDir, layoutFile),
		filepath.Join(app.HTMLDir, pageFile),
	}

	ts, err := template.New("").Funcs(functions).ParseFiles(files...)
	if err != nil {
		app.ServerError(w, err)
		return
	}

	ts, err = ts.ParseGlob(filepath.Join(app.HTMLDir, "*.partial.html"))
	if err != nil {
		app.ServerError(w, err)
		return
	}

	// Рендерим во временный буфер, чтобы ошибка шаблона не попала в ответ
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		app.ServerError(w, err)
		return
	}

	buf.WriteTo(w)
}
