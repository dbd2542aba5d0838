package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

type UserRepository struct {
	mu      sync.RWMutex
	nextID  uint64
	users   map[uint64]domain.User
	byEmail map[string]uint64
	now     func() time.Time
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(now func() time.Time) *UserRepository {
	if now == nil {
		now = time.Now
	}
	return &UserRepository{
		users:   make(map[uint64]domain.User),
		byEmail: make(map[string]uint64),
		now:     now,
	}
}

func (r *UserRepository) Create(_ context.Context, input domain.CreateUserInput) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[input.Email]; taken {
		return domain.User{}, domain.ErrEmailTaken
	}

	r.nextID++
	now := r.now()
	user := domain.User{
		ID:           r.nextID,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		IsAdmin:      input.IsAdmin,
		Status:       input.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[user.ID] = user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID uint64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return r.users[id], nil
}

func (r *UserRepository) ListByStatus(_ context.Context, status domain.UserStatus) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0)
	for _, user := range r.users {
		if user.Status == status {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) SetStatus(_ context.Context, userID uint64, status domain.UserStatus) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	user.Status = status
	user.UpdatedAt = r.now()
	r.users[userID] = user
	return user, nil
}
