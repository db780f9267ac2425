package web

import (
	"errors"
	"net/http"

	"blog/internal/database"
)

func (app *app) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Регистрация",
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	app.infoLog.Printf("Attempting to register user: email=%q", email)

	user, err := app.UserService.CreateUser(email, password)
	if err != nil {
		// Занятый email - конфликт: redirect с flash, без частичного состояния
		if errors.Is(err, database.ErrEmailExists) {
			app.flash(w, err.Error())
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		// Ошибки валидации показываем в самой форме
		data := &HTMLData{
			Title:     "Регистрация",
			FormError: err.Error(),
			FormData: map[string]string{
				"email": email,
			},
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	if user.IsAdmin {
		app.infoLog.Printf("First registered user %q becomes admin (ID %d)", user.Email, user.ID)
	} else {
		app.infoLog.Printf("Successfully registered user: %q (ID %d)", user.Email, user.ID)
	}

	app.flash(w, "Регистрация успешна! Теперь вы можете войти.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Вход",
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	app.infoLog.Printf("Attempting to login user: email=%q", email)

	id, err := app.UserService.VerifyUser(email, password)
	if err != nil {
		data := &HTMLData{
			Title:     "Вход",
			FormError: "Неверный email или пароль",
			FormData: map[string]string{
				"email": email,
			},
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	// Создаем сессию
	session, err := app.SessionService.CreateSession(id)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %d: %v", id, err)
		app.ServerError(w, err)
		return
	}

	// Устанавливаем cookie сессии
	app.setSessionCookie(w, session.Token)

	app.infoLog.Printf("Login successful: id=%d email=%q", id, email)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	token := app.getSessionToken(r)
	if token != "" {
		if err := app.SessionService.DeleteSession(token); err != nil {
			app.errorLog.Printf("Failed to delete session: %v", err)
		}
	}

	app.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
