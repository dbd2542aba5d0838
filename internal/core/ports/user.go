package ports

import (
	"context"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetByID(ctx context.Context, userID uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
	SetStatus(ctx context.Context, userID uint64, status domain.UserStatus) (domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, token string) (domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type SignupInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, domain.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
	ApproveUser(ctx context.Context, userID uint64) (domain.User, error)
	// RejectUser refuses to let an administrator reject their own account.
	RejectUser(ctx context.Context, adminID, userID uint64) (domain.User, error)
}
