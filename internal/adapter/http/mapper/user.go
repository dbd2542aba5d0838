package mapper

import (
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/dto"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToLoginResponse(session domain.Session, user domain.User) dto.LoginResponse {
	return dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		User:      ToUserItem(user),
	}
}
