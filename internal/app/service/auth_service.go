package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

type AuthConfig struct {
	SessionTTL  time.Duration
	AdminEmails []string
	// BcryptCost falls back to bcrypt.DefaultCost when zero.
	BcryptCost int
}

type AuthService struct {
	users       ports.UserRepository
	sessions    ports.SessionRepository
	sessionTTL  time.Duration
	adminEmails map[string]struct{}
	bcryptCost  int
	now         func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, cfg AuthConfig, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 72 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}

	return &AuthService{
		users:       users,
		sessions:    sessions,
		sessionTTL:  cfg.SessionTTL,
		adminEmails: admins,
		bcryptCost:  cfg.BcryptCost,
		now:         now,
	}
}

// Signup registers a pending account. Addresses listed as admin emails are
// created as approved administrators.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (domain.User, error) {
	email := normalizeEmail(input.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	status := domain.UserStatusPending
	_, isAdmin := s.adminEmails[email]
	if isAdmin {
		status = domain.UserStatusApproved
	}

	return s.users.Create(ctx, domain.CreateUserInput{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		Status:       status,
	})
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
	}

	if err := checkStatus(user); err != nil {
		return domain.Session{}, domain.User{}, err
	}

	now := s.now()
	if removed, err := s.sessions.DeleteExpired(ctx, now); err != nil {
		zap.L().Warn("failed to purge expired sessions", zap.Error(err))
	} else if removed > 0 {
		zap.L().Debug("purged expired sessions", zap.Int64("count", removed))
	}

	session := domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("create session: %w", err)
	}

	return session, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to an approved user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return domain.User{}, err
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			zap.L().Warn("failed to delete expired session", zap.Uint64("user_id", session.UserID), zap.Error(err))
		}
		return domain.User{}, domain.ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrSessionNotFound
		}
		return domain.User{}, err
	}

	if err := checkStatus(user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func checkStatus(user domain.User) error {
	switch user.Status {
	case domain.UserStatusApproved:
		return nil
	case domain.UserStatusRejected:
		return domain.ErrAccountRejected
	default:
		return domain.ErrAccountPending
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ ports.AuthService = (*AuthService)(nil)
