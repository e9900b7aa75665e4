package repository

import (
	"context"
	"errors"
	"time"

	"airease-backend/internal/domain/user"
	"airease-backend/internal/infra"
	"airease-backend/internal/infra/db"
	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertUserSQL = `
INSERT INTO users (id, email, username, password_hash, label, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	existsUserByEmailSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	selectUserColumns = `SELECT id, email, username, password_hash, label, is_active, created_at FROM users`
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.Username().Value(), u.PasswordHash(), u.Label().String(),
		u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email user.Email) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsUserByEmailSQL, email.Value()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user email", err)
	}
	return exists, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, selectUserColumns+` WHERE email = $1`, email)
	view, hash, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, selectUserColumns+` WHERE id = $1`, id)
	view, _, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func scanUser(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		view      queries.AuthorizedUserView
		hash      string
		createdAt time.Time
	)
	if err := row.Scan(&view.ID, &view.Email, &view.Username, &hash, &view.Label, &view.IsActive, &createdAt); err != nil {
		return nil, "", err
	}
	view.CreatedAt = createdAt.UTC()
	return &view, hash, nil
}
