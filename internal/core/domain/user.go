package domain

import "time"

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

func ParseUserStatus(value string) (UserStatus, bool) {
	switch s := UserStatus(value); s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected:
		return s, true
	default:
		return "", false
	}
}

type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
	Status       UserStatus
}

type Session struct {
	Token     string
	UserID    uint64
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
