package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

const selectUsers = `
SELECT id, email, name, password_hash, is_admin, status, created_at, updated_at
FROM users`

type UserRepository struct {
	db      *sqlx.DB
	dialect dialect
	now     func() time.Time
}

type userRow struct {
	ID           uint64    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, dialect: dialectFor(db), now: time.Now}
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	now := r.now()
	id, err := r.dialect.insert(ctx, r.db, `
INSERT INTO users (email, name, password_hash, is_admin, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Email,
		input.Name,
		input.PasswordHash,
		input.IsAdmin,
		string(input.Status),
		now,
		now,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getOne(ctx, selectUsers+" WHERE id = ?", userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, selectUsers+" WHERE email = ?", email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	var rows []userRow
	query := selectUsers + " WHERE status = ? ORDER BY id"
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), string(status)); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

func (r *UserRepository) SetStatus(ctx context.Context, userID uint64, status domain.UserStatus) (domain.User, error) {
	if _, err := r.GetByID(ctx, userID); err != nil {
		return domain.User{}, err
	}

	_, err := r.db.ExecContext(ctx, r.db.Rebind("UPDATE users SET status = ?, updated_at = ? WHERE id = ?"),
		string(status),
		r.now(),
		userID,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("update user status: %w", err)
	}

	return r.GetByID(ctx, userID)
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		Status:       domain.UserStatus(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
