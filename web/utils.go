package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"

	"blog/internal/models"
)

const (
	SessionCookieName = "session_token"
	FlashCookieName   = "flash"
)

// signToken подписывает токен сессии секретным ключом (HMAC-SHA256).
// В cookie хранится "токен.подпись"
func (app *app) signToken(token string) string {
	mac := hmac.New(sha256.New, app.secret)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// verifyToken проверяет подпись и возвращает исходный токен
func (app *app) verifyToken(signed string) (string, bool) {
	token, signature, found := strings.Cut(signed, ".")
	if !found {
		return "", false
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, app.secret)
	mac.Write([]byte(token))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", false
	}

	return token, true
}

// setSessionCookie устанавливает cookie с подписанным токеном сессии
func (app *app) setSessionCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    app.signToken(token),
		Path:     "/",
		MaxAge:   24 * 60 * 60, // 24 часа в секундах
		HttpOnly: true,         // Защита от XSS
		Secure:   false,        // Поставить true для HTTPS
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie удаляет cookie сессии
func (app *app) clearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, cookie)
}

// getSessionToken получает токен сессии из cookie и проверяет подпись
func (app *app) getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	token, ok := app.verifyToken(cookie.Value)
	if !ok {
		return ""
	}
	return token
}

// getCurrentUser получает текущего пользователя по сессии
func (app *app) getCurrentUser(r *http.Request) *models.User {
	token := app.getSessionToken(r)
	if token == "" {
		return nil
	}

	user, err := app.SessionService.GetUserBySession(token)
	if err != nil {
		return nil
	}

	return user
}

// isAuthenticated проверяет, авторизован ли пользователь
func (app *app) isAuthenticated(r *http.Request) bool {
	return app.getCurrentUser(r) != nil
}

// flash сохраняет одноразовое сообщение в cookie до следующего рендера
func (app *app) flash(w http.ResponseWriter, message string) {
	cookie := &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// popFlash читает flash-сообщение и сразу удаляет cookie
func (app *app) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	message, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(message)
}
