// Package rules содержит чистые функции проверки прав доступа.
// Каждая функция принимает текущего пользователя (nil - гость) и
// состояние целевой сущности, и возвращает решение с причиной отказа.
package rules

import "blog/internal/models"

// Decision - результат проверки права на действие
type Decision struct {
	Allowed bool
	Reason  string // Причина отказа для flash-сообщения
}

// Причины отказа
const (
	ReasonNotLoggedIn      = "необходимо войти в систему"
	ReasonNotAdmin         = "это действие доступно только администратору"
	ReasonBlacklisted      = "вам запрещено оставлять комментарии"
	ReasonAlreadyCommented = "вы уже оставили комментарий к этому посту"
	ReasonNotCommentAuthor = "удалять можно только свои комментарии"
)

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// requireAdmin - общая проверка для действий администратора
func requireAdmin(user *models.User) Decision {
	if user == nil {
		return deny(ReasonNotLoggedIn)
	}
	if !user.IsAdmin {
		return deny(ReasonNotAdmin)
	}
	return allow()
}

// CanCreatePost - создавать посты может только администратор
func CanCreatePost(user *models.User) Decision {
	return requireAdmin(user)
}

// CanEditPost - редактировать посты может только администратор
func CanEditPost(user *models.User) Decision {
	return requireAdmin(user)
}

// CanDeletePost - удалять посты может только администратор
func CanDeletePost(user *models.User) Decision {
	return requireAdmin(user)
}

// CanComment проверяет право оставить комментарий к посту.
// Пользователь должен быть авторизован и не состоять в черном списке.
// Не-администратор может оставить не более одного комментария к посту;
// hasCommented - есть ли уже комментарий этого пользователя к посту.
func CanComment(user *models.User, hasCommented bool) Decision {
	if user == nil {
		return deny(ReasonNotLoggedIn)
	}
	if user.IsBlacklisted {
		return deny(ReasonBlacklisted)
	}
	if !user.IsAdmin && hasCommented {
		return deny(ReasonAlreadyCommented)
	}
	return allow()
}

// CanDeleteComment проверяет право удалить комментарий.
// Удалить комментарий может только его автор; статус администратора
// это правило не обходит.
func CanDeleteComment(user *models.User, comment *models.Comment) Decision {
	if user == nil {
		return deny(ReasonNotLoggedIn)
	}
	if user.ID != comment.UserID {
		return deny(ReasonNotCommentAuthor)
	}
	return allow()
}

// CanAccessAdminPanel - панель администратора доступна только администратору
func CanAccessAdminPanel(user *models.User) Decision {
	return requireAdmin(user)
}

// CanToggleBlacklist - управлять черным списком может только администратор
func CanToggleBlacklist(user *models.User) Decision {
	return requireAdmin(user)
}
