package web

import (
	"net/http"

	"blog/internal/database"
	"blog/internal/rules"
)

// adminPanel показывает список пользователей с управлением черным списком
func (app *app) adminPanel(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)

	if d := rules.CanAccessAdminPanel(user); !d.Allowed {
		app.flash(w, d.Reason)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	users, err := app.UserService.GetAllUsers()
	if err != nil {
		app.ServerError(w, err)
		return
	}

	data := &HTMLData{
		Title:       "Панель администратора",
		CurrentUser: user,
		Users:       users,
	}

	app.RenderHTML(w, r, "admin.page.html", data)
}

// toggleBlacklist переключает флаг черного списка пользователя
func (app *app) toggleBlacklist(w http.ResponseWriter, r *http.Request, userID int) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	user := app.getCurrentUser(r)

	if d := rules.CanToggleBlacklist(user); !d.Allowed {
		app.flash(w, d.Reason)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := app.UserService.ToggleBlacklist(userID); err != nil {
		if err == database.ErrUserNotFound {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	app.infoLog.Printf("Blacklist toggled for user %d by %q", userID, user.Email)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
