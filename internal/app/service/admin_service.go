package service

import (
	"context"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

func (s *AdminService) ListUsers(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	return s.users.ListByStatus(ctx, status)
}

func (s *AdminService) ApproveUser(ctx context.Context, userID uint64) (domain.User, error) {
	return s.users.SetStatus(ctx, userID, domain.UserStatusApproved)
}

func (s *AdminService) RejectUser(ctx context.Context, adminID, userID uint64) (domain.User, error) {
	if adminID == userID {
		return domain.User{}, domain.ErrSelfReject
	}
	return s.users.SetStatus(ctx, userID, domain.UserStatusRejected)
}

var _ ports.AdminService = (*AdminService)(nil)
